package vitime

import "regexp"

// bucketHour maps a colloquial part-of-day word to its canonical hour.
// Order matters: resolution walks the slice top to bottom and the first
// matching bucket wins.
type bucketHour struct {
	word string
	hour int
}

var bucketHours = []bucketHour{
	{"sáng", 8},
	{"trưa", 12},
	{"chiều", 15},
	{"tối", 20},
}

var quarterNumbers = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4,
	"1": 1, "2": 2, "3": 3, "4": 4,
}

var (
	// clockRe matches explicit clock times: "10h", "10h30", "10:30", "10 giờ".
	clockRe = regexp.MustCompile(`(\d{1,2})(?:h|g| giờ|:)(\d{0,2})`)

	// dateLiteralRe matches numeric dates: "15/3", "15-03-2024", "01.07.25",
	// optionally preceded by "từ".
	dateLiteralRe = regexp.MustCompile(`(?:từ\s+)?(\d{1,2})[/\-.](\d{1,2})(?:[/\-.](\d{2,4}))?`)

	// quarterRe matches quarter anchors: "quý 2", "quý IV năm 2025".
	// "iv" must come before "i{1,3}" so roman four is not read as one.
	quarterRe = regexp.MustCompile(`quý\s+(iv|i{1,3}|[1-4])(?:\s+năm\s+(\d{4}))?`)

	// beforeAfterRe matches "trước 10h", "sau 9h30", "trước 3 tháng", "sau 25 năm".
	beforeAfterRe = regexp.MustCompile(`(trước|sau)\s+(?:(\d{1,2})(?:h|g| giờ|:)(\d{0,2})?|\s*(\d{1,2})\s*(tháng|năm))`)

	// durationRe matches elapsed durations: "30 phút nữa", "2 tiếng", "3 ngày".
	durationRe = regexp.MustCompile(`(\d+)\s*(phút|tiếng|giờ|ngày)\s*(nữa|sau|trong)?`)
)
