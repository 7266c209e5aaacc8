package resources

import "embed"

// Models holds the glTF models shipped with the binary.
//
//go:embed models
var Models embed.FS
