package templating

// TemplateConfig holds the formatting options for generated names.
type TemplateConfig struct {
	// Format is the text/template applied to every name. An empty Format
	// prints the name unchanged.
	Format string `json:"format" yaml:"format"`

	// Separator is written after every rendered name.
	Separator string `json:"separator" yaml:"separator"`
}

// DefaultFormat prints the bare name.
const DefaultFormat = "{{.Name}}"

// DefaultConfig returns a TemplateConfig that prints one name per line.
func DefaultConfig() TemplateConfig {
	return TemplateConfig{
		Format:    DefaultFormat,
		Separator: "\n",
	}
}
