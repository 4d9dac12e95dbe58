package sales

import "math/rand"

const saleIDLength = 6

// GenerateSaleID produces a sale identifier of six random decimal digits.
// Uniqueness is not enforced: a collision makes lookups by ID hit the first
// matching row, which is accepted risk at this volume.
func GenerateSaleID() string {
	digits := make([]byte, saleIDLength)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}
