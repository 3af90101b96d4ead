// Package processor runs the easy-Korean pipeline: it romanizes the input,
// simplifies it, romanizes and translates the simplified text and looks up
// its keywords in the dictionary. It is shared by the HTTP server and the
// batch command.
package processor
