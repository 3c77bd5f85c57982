package entity

type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var interests = []Interest{
	{ID: "1", Name: "Food & Drink", Icon: "utensils"},
	{ID: "2", Name: "Music & Nightlife", Icon: "music"},
	{ID: "3", Name: "Festivals & Culture", Icon: "palette"},
	{ID: "4", Name: "Adventure & Outdoor", Icon: "tree"},
	{ID: "5", Name: "Wellness", Icon: "spa"},
	{ID: "6", Name: "Workshops & Community", Icon: "users"},
	{ID: "7", Name: "Sports", Icon: "baseball"},
	{ID: "8", Name: "Family-Friendly", Icon: "child"},
	{ID: "9", Name: "Tours", Icon: "map"},
	{ID: "10", Name: "Local Culture", Icon: "landmark"},
}

// Interests returns a copy of the fixed interest set.
func Interests() []Interest {
	out := make([]Interest, len(interests))
	copy(out, interests)
	return out
}
