package archetype

// Recommendations holds curated picks for one archetype.
type Recommendations struct {
	Movies     []string
	Books      []string
	Activities []string
	Music      []string
}

// #region recommendation-table

var recommendationTable = map[string]Recommendations{
	"The Creator": {
		Movies:     []string{"Amadeus", "Frida", "Shakespeare in Love", "The Red Shoes"},
		Books:      []string{"The Artist's Way", "Steal Like an Artist", "Big Magic"},
		Activities: []string{"Painting workshops", "Creative writing", "Visiting art galleries", "Learning an instrument"},
		Music:      []string{"David Bowie", "Experimental genres", "Art rock", "Classical compositions"},
	},
	"The Explorer": {
		Movies:     []string{"Into the Wild", "The Secret Life of Walter Mitty", "Wild", "The Beach"},
		Books:      []string{"Wild", "The Alchemist", "Into the Wild", "Travels with Charley"},
		Activities: []string{"Hiking", "Travel photography", "Trying new cuisines", "Adventure sports"},
		Music:      []string{"World music", "Folk", "Ambient nature sounds", "Adventure film scores"},
	},
	"The Sage": {
		Movies:     []string{"The Matrix", "Good Will Hunting", "A Beautiful Mind", "The Imitation Game"},
		Books:      []string{"Meditations", "Sapiens", "Thinking, Fast and Slow", "The Power of Now"},
		Activities: []string{"Meditation", "Philosophical discussions", "Research projects", "Reading groups"},
		Music:      []string{"Classical", "Instrumental", "Thought-provoking lyrics", "Ambient study music"},
	},
	"The Caregiver": {
		Movies:     []string{"Pay It Forward", "The Blind Side", "Steel Magnolias", "Patch Adams"},
		Books:      []string{"Tuesdays with Morrie", "The Five Love Languages", "The Giving Tree", "Chicken Soup for the Soul"},
		Activities: []string{"Volunteering", "Mentoring", "Community service", "Caregiving"},
		Music:      []string{"Uplifting", "Emotional ballads", "Connection-focused", "Inspirational"},
	},
	"The Ruler": {
		Movies:     []string{"The Godfather", "The Social Network", "Lincoln", "The Queen"},
		Books:      []string{"The 7 Habits of Highly Effective People", "Leaders Eat Last", "The Prince", "Good to Great"},
		Activities: []string{"Strategic games", "Project planning", "Team sports", "Public speaking"},
		Music:      []string{"Powerful anthems", "Structured classical", "Motivational", "Epic film scores"},
	},
	"The Jester": {
		Movies:     []string{"The Grand Budapest Hotel", "Superbad", "Anchorman", "Monty Python films"},
		Books:      []string{"Bossypants", "Yes Please", "The Hitchhiker's Guide to the Galaxy", "Humorous memoirs"},
		Activities: []string{"Improv classes", "Comedy shows", "Social games", "Party planning"},
		Music:      []string{"Upbeat pop", "Comedy music", "Playful genres", "Dance music"},
	},
	"The Lover": {
		Movies:     []string{"The Notebook", "Casablanca", "Eternal Sunshine", "Before Sunrise"},
		Books:      []string{"Pride and Prejudice", "The Time Traveler's Wife", "Call Me by Your Name", "Romantic poetry"},
		Activities: []string{"Cooking for loved ones", "Dancing", "Spa days", "Romantic getaways"},
		Music:      []string{"Love songs", "Sensual jazz", "Romantic classical", "R&B"},
	},
	"The Hero": {
		Movies:     []string{"Braveheart", "Gladiator", "Wonder Woman", "The Dark Knight"},
		Books:      []string{"The Hero with a Thousand Faces", "Man's Search for Meaning", "The Odyssey", "Biographies of leaders"},
		Activities: []string{"Martial arts", "Extreme sports", "Rescue training", "Leadership workshops"},
		Music:      []string{"Epic soundtracks", "Rock anthems", "Motivational", "Power metal"},
	},
	"The Everyman": {
		Movies:     []string{"Forrest Gump", "The Shawshank Redemption", "Groundhog Day", "It's a Wonderful Life"},
		Books:      []string{"To Kill a Mockingbird", "The Catcher in the Rye", "Normal People", "Realistic fiction"},
		Activities: []string{"Social gatherings", "Team sports", "Community events", "Casual hobbies"},
		Music:      []string{"Popular hits", "Folk rock", "Relatable lyrics", "Mainstream genres"},
	},
	"The Rebel": {
		Movies:     []string{"Fight Club", "V for Vendetta", "The Matrix", "Dead Poets Society"},
		Books:      []string{"1984", "On the Road", "The Catcher in the Rye", "Revolutionary literature"},
		Activities: []string{"Activism", "Urban exploration", "Alternative sports", "Political discussions"},
		Music:      []string{"Punk rock", "Protest songs", "Alternative genres", "Revolutionary anthems"},
	},
	"The Magician": {
		Movies:     []string{"The Prestige", "Harry Potter series", "Doctor Strange", "Practical Magic"},
		Books:      []string{"The Night Circus", "Jonathan Strange & Mr Norrell", "The Magicians", "Mythology"},
		Activities: []string{"Magic tricks", "Spiritual practices", "Vision boarding", "Creative visualization"},
		Music:      []string{"Mystical", "Electronic", "Fantasy soundtracks", "Transcendental"},
	},
	"The Seeker": {
		Movies:     []string{"The Truman Show", "Eat Pray Love", "The Darjeeling Limited", "Into the Wild"},
		Books:      []string{"The Alchemist", "Siddhartha", "The Celestine Prophecy", "Self-discovery literature"},
		Activities: []string{"Travel", "Meditation retreats", "Trying new experiences", "Personal growth workshops"},
		Music:      []string{"World fusion", "New age", "Journey-themed", "Eclectic mixes"},
	},
}

// #endregion recommendation-table

// Recommend returns the recommendation set for an archetype. Labels
// without an entry of their own fall back to The Explorer's picks.
func Recommend(archetype string) Recommendations {
	if r, ok := recommendationTable[archetype]; ok {
		return r
	}
	return recommendationTable["The Explorer"]
}
