package consts

const (
	// PageSize is the fixed number of posts per listing page.
	PageSize = 10

	MimePrefixImage = "image"

	// MaxImageWidth is the widest stored post image, larger uploads are downscaled.
	MaxImageWidth = 1600
)
