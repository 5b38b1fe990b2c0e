// Package links builds outbound URLs for messaging, maps and QR codes.
// Nothing here calls the remote services; the URLs are handed to clients.
package links

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/baharkarakas/church-backend/internal/api/validate"
)

const (
	whatsAppBase = "https://wa.me/"
	mapsBase     = "https://www.google.com/maps/search/"
	qrBase       = "https://api.qrserver.com/v1/create-qr-code/"

	defaultCountryCode = "55"
)

// WhatsApp returns a wa.me deep link, or "" when the phone has no usable digits.
// National numbers (10 or 11 digits) get the default country code.
func WhatsApp(phone, text string) string {
	digits := validate.Digits(phone)
	if len(digits) < 10 {
		return ""
	}
	if len(digits) <= 11 && !strings.HasPrefix(strings.TrimSpace(phone), "+") {
		digits = defaultCountryCode + digits
	}
	u := whatsAppBase + digits
	if text != "" {
		u += "?" + url.Values{"text": {text}}.Encode()
	}
	return u
}

// Maps returns a Google Maps search link for a free-form address.
func Maps(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	return mapsBase + "?" + url.Values{"api": {"1"}, "query": {address}}.Encode()
}

// QRCode returns an image URL encoding data.
func QRCode(data string, size int) string {
	if size <= 0 {
		size = 300
	}
	s := strconv.Itoa(size)
	return qrBase + "?" + url.Values{"size": {s + "x" + s}, "data": {data}}.Encode()
}

