package reference

import "sort"

// RhymePair is two lines whose final words rhyme. The generator places the
// First line in an A position and the Second in the matching A' position.
type RhymePair struct {
	First  string
	Second string
}

const DefaultSonnetTheme = "love"

var sonnetBank = map[string][]RhymePair{
	"love": {
		{"My heart was kindled by your gentle light", "And held its flame through every winter night"},
		{"I found the meaning hidden in your face", "And learned the patient measure of your grace"},
		{"Your voice is softer than the summer rain", "It takes away the memory of pain"},
		{"When all the world grows cold and turns away", "Your hand is warm beside me every day"},
		{"You are the quiet music of my mind", "The truest friend that love could ever find"},
		{"Though seasons turn and all the roses fade", "I keep the solemn promise that we made"},
		{"So let the years go by and let them run", "For you and I have only just begun"},
		{"I give to you the whole of my own heart", "And trust that we shall never drift apart"},
	},
	"nature": {
		{"The morning mist lies soft upon the hill", "And all the sleeping meadow lingers still"},
		{"The river glitters golden in the sun", "And down the valley all its waters run"},
		{"The ancient oak stands firm against the gale", "While blossoms drift across the quiet vale"},
		{"The swallows wheel above the golden field", "And all the summer orchards start to yield"},
		{"The mountain stream is patient, cold and slow", "Beneath the pines the evening embers glow"},
		{"The wind is whispering among the leaves", "And gathers up the gold of harvest sheaves"},
		{"The meadow flowers open to the dawn", "And dew is shining on the waking lawn"},
		{"Beneath the stars the sleeping forest lies", "And owls are calling softly through the skies"},
	},
	"time": {
		{"The hours slip away like grains of sand", "That fall too quickly through an open hand"},
		{"The years have carved their letters on my brow", "And taught me there is nothing but the now"},
		{"What once was young is weathered now and gray", "The morning light gives way to close of day"},
		{"The castles of the ancient kings have crumbled", "And every proud and mighty throne is humbled"},
		{"Yet memory can hold what time would steal", "And given patience every wound will heal"},
		{"The seasons wheel around us as before", "Like waves that wash upon an endless shore"},
		{"So spend your days on what you hold most dear", "For time will take them swiftly year by year"},
		{"The candle burns until the wax is spent", "Yet leaves a glow to show us where it went"},
	},
}

// SonnetBank returns a copy of the rhyme pairs for a theme.
func SonnetBank(theme string) ([]RhymePair, bool) {
	pairs, ok := sonnetBank[theme]
	if !ok {
		return nil, false
	}
	return append([]RhymePair(nil), pairs...), true
}

func SonnetThemes() []string {
	themes := make([]string, 0, len(sonnetBank))
	for theme := range sonnetBank {
		themes = append(themes, theme)
	}
	sort.Strings(themes)
	return themes
}
