package invoice

import (
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
)

// Seller is the fixed part of every invoice.
type Seller struct {
	Name        string
	ContactLine string
	Currency    string
	DateLayout  string
}

type Header struct {
	Seller  string
	Title   string
	Number  string
	DateStr string
}

type Party struct {
	Title string
	Lines []string
}

type Document struct {
	Header  Header
	BillTo  Party
	ShipTo  Party
	Columns []string
	Rows    [][]string
	Totals  [][2]string
	Footer  []string
}

var tableColumns = []string{"Item", "Quantity", "Price", "Total"}

// Layout fills the invoice template with the order data.
func Layout(o entities.Order, s Seller) Document {
	rows := make([][]string, 0, len(o.Items))
	for _, it := range o.Items {
		rows = append(rows, []string{
			it.Name,
			strconv.Itoa(it.Quantity),
			FormatMoney(s.Currency, it.Price),
			FormatMoney(s.Currency, it.Total()),
		})
	}

	totals := ComputeTotals(o)
	totalRows := make([][2]string, 0, len(totals.Lines))
	for _, l := range totals.Lines {
		totalRows = append(totalRows, [2]string{l.Label + ":", l.Format(s.Currency)})
	}

	return Document{
		Header: Header{
			Seller:  s.Name,
			Title:   "INVOICE",
			Number:  "#" + o.ShortID(),
			DateStr: "Date: " + o.CreatedAt.UTC().Format(s.DateLayout),
		},
		BillTo: Party{
			Title: "BILL TO:",
			Lines: []string{o.UserDetails.Name, o.UserDetails.Email, o.UserDetails.Phone},
		},
		ShipTo: Party{
			Title: "SHIP TO:",
			Lines: []string{
				o.DeliveryAddress.Name,
				o.DeliveryAddress.Address,
				o.DeliveryAddress.Pincode,
				o.DeliveryAddress.Phone,
			},
		},
		Columns: tableColumns,
		Rows:    rows,
		Totals:  totalRows,
		Footer: []string{
			"Thank you for your business!",
			s.ContactLine,
			"Order ID: " + o.OrderID + " | Status: " + strings.ToUpper(string(o.Status)),
		},
	}
}

// Filename is the download name of the invoice for o.
func Filename(o entities.Order) string {
	return "invoice-" + o.ShortID() + ".pdf"
}
