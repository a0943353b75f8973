package apitest

// PNG is the smallest byte sequence recognized as a PNG image.
var PNG = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 24)...)

// JPEG is the smallest byte sequence recognized as a JPEG image.
var JPEG = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 24)...)
