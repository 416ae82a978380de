package vlad

// Version is the release tag reported by the CLI.
const Version = "0.3.0"
