/*
Package corpus supplies training words to a markov.Model.

Words come from a Reader. LineReader reads one word per line from any
io.Reader, skipping empty lines; OpenFile does the same for a file on disk.
SplitReader and OpenTextFile instead pull every word out of running text.
Store keeps named corpora in a SQLite database so they can be imported once and
trained from many times. Train drains a Reader into anything with a TrainWord
method.
*/
package corpus
