// Package gs1format provides the consumer-facing helper surfaces built
// on top of a DecodeResult: friendly AI names and a human date
// reformatter, for callers that want something more presentable than
// the raw AI codes and ISO dates the core decoder returns.
package gs1format

import "fmt"

// friendlyNames maps an AI code to the short human-readable label a
// pharmacy or warehouse operator would recognize, for the handful of
// AIs a pharmaceutical secondary-packaging barcode actually carries.
var friendlyNames = map[string]string{
	"00":  "SSCC",
	"01":  "GTIN Code",
	"02":  "Content GTIN",
	"10":  "Batch/Lot Number",
	"11":  "Production Date",
	"13":  "Packaging Date",
	"15":  "Best Before Date",
	"16":  "Sell By Date",
	"17":  "Expiry Date",
	"20":  "Variant",
	"21":  "Serial Number",
	"22":  "Consumer Product Variant",
	"235": "Third-Party Controlled, Serialized Extension",
	"240": "Additional Item Identification",
	"241": "Customer Part Number",
	"242": "Made-to-Order Variation Number",
	"243": "Packaging Component Number",
	"250": "Secondary Serial Number",
	"251": "Reference to Source Entity",
	"253": "Global Document Type Identifier",
	"254": "GLN Extension Component",
	"255": "Global Coupon Number",
	"30":  "Variable Count",
	"37":  "Count of Items",
	"90":  "Internal Company Code 1",
	"91":  "Internal Company Code 2",
	"92":  "Internal Company Code 3",
	"93":  "Internal Company Code 4",
	"94":  "Internal Company Code 5",
	"95":  "Internal Company Code 6",
	"96":  "Internal Company Code 7",
	"97":  "Internal Company Code 8",
	"98":  "Internal Company Code 9",
	"99":  "Internal Company Code 10",
}

// FriendlyName returns the human-readable label for ai, falling back
// to "AI <code>" for anything not in the curated table (the full
// pkg/aidict catalogue's own Title is a better source for anything
// this table omits).
func FriendlyName(ai string) string {
	if name, ok := friendlyNames[ai]; ok {
		return name
	}
	return fmt.Sprintf("AI %s", ai)
}
