package internal

// Version is the current simpletalk release.
const Version = "v0.3.0"
