package replay

//go:generate flatc --go -o .. ../replay.fbs
