// Package args implements the positional/switch argument model used by the
// init and add commands. Switches are exact-match aliases such as "-pch";
// everything else, the program name included, is kept as an ordered
// positional parameter.
package args
