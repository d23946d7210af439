package workout

import "strings"

// imageGeneric is used when no keyword matches an exercise name.
const imageGeneric = "https://images.unsplash.com/photo-1517838277536-f5f99be501cd"

// imageKeywords maps exercise-name keywords to stock images, checked in
// order so the more specific keywords win.
var imageKeywords = []struct {
	keywords []string
	url      string
}{
	{[]string{"push-up", "pushup"}, "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b"},
	{[]string{"squat"}, "https://images.unsplash.com/photo-1434682881908-b43d0467b798"},
	{[]string{"plank"}, "https://images.unsplash.com/photo-1566241440091-ec10de8db2e1"},
	{[]string{"burpee"}, "https://images.unsplash.com/photo-1593164842264-854604db2260"},
	{[]string{"lunge"}, "https://images.unsplash.com/photo-1534258936925-c58bed479fcb"},
	{[]string{"mountain climber"}, "https://images.unsplash.com/photo-1541534741688-6078c6bfb5c5"},
	{[]string{"row", "pull"}, "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61"},
	{[]string{"jump", "rope"}, "https://images.unsplash.com/photo-1515238152791-8216bfdf89a7"},
	{[]string{"crunch", "sit-up", "situp"}, "https://images.unsplash.com/photo-1571945153237-4929e783af4a"},
	{[]string{"kettlebell", "swing"}, "https://images.unsplash.com/photo-1517836357463-d25dfeac3438"},
	{[]string{"yoga", "downward"}, "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b"},
	{[]string{"warrior"}, "https://images.unsplash.com/photo-1506126613408-eca07ce68773"},
	{[]string{"jog", "run"}, "https://images.unsplash.com/photo-1476480862126-209bfaa8edc8"},
	{[]string{"deadlift"}, "https://images.unsplash.com/photo-1534438327276-14e5300c3a48"},
	{[]string{"bench", "press"}, "https://images.unsplash.com/photo-1584466977773-e625c37cdd50"},
}

// defaultImageForExercise picks a stock image by keyword-matching the
// exercise name, falling back to a generic one.
func defaultImageForExercise(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range imageKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.url
			}
		}
	}
	return imageGeneric
}
