package service

// QRCodeService renders QR codes for MFA enrolment.
type QRCodeService interface {
	// GeneratePNG renders content as a PNG image.
	GeneratePNG(content string) ([]byte, error)

	// GenerateDataURL renders content as a base64 PNG data URL for direct display.
	GenerateDataURL(content string) (string, error)
}
