package internal

// Version is the current langlearn version
const Version = "0.3.1"
