package entities

const InvoiceContentType = "application/pdf"

// Invoice is a rendered invoice document ready to be offered as a download.
type Invoice struct {
	Filename    string
	ContentType string
	Content     []byte
}
