package metadata

// ImageData is the output of the image decoder: pixels converted to RGBA,
// plus the channel count of the source file so callers can reject formats
// they do not support.
type ImageData struct {
	Width        uint32
	Height       uint32
	ChannelCount uint8
	// Pixels holds tightly packed RGBA bytes, bottom row first when the
	// image was decoded with a vertical flip.
	Pixels []uint8
}
