package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)
