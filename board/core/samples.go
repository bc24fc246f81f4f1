// ABOUTME: Sample scripts seeded into a brand-new board, one per pipeline stage.
// ABOUTME: Gives first-time users something to drag around before writing their own.
package core

// SampleCards returns freshly built sample cards covering every stage.
func SampleCards() []Card {
	samples := []CardFields{
		{
			Title:         Ptr("Why Your Brain Craves Junk Food"),
			Hook:          Ptr("Your brain has a hidden weakness that makes junk food irresistible. Here's the science behind why you can't stop eating chips..."),
			Platform:      Ptr(PlatformInstagram),
			ViralityScore: Ptr(8),
			Content:       Ptr("It's not a lack of willpower, it's biology.\n\n1. Sugar + fat is a combination nature never offers, so the brain rewards it.\n2. Products are engineered to hit the bliss point of salt, sugar and fat.\n3. Processed food lights up the same reward pathways as other addictions.\n4. Big portions quietly reset your fullness signals.\n\nMake your environment work for you instead of against you.\n\nWhat junk food is hardest for you to resist?"),
			Status:        Ptr(StageIdeas),
		},
		{
			Title:         Ptr("The 60-Second Rule That Changed My Life"),
			Hook:          Ptr("This one simple rule has saved me hours every day and completely transformed how I approach productivity..."),
			Platform:      Ptr(PlatformInstagram),
			ViralityScore: Ptr(9),
			Content:       Ptr("If something takes less than 60 seconds, do it now.\n\n- Small tasks never pile up\n- Momentum builds through the day\n- Less mental load and decision fatigue\n\nReply to the text. File the document. Wash the cup.\n\nTry it for one week.\n\nWhat tiny task have you been putting off?"),
			Notes:         Ptr("Approved - great hook, very actionable"),
			Status:        Ptr(StageReady),
		},
		{
			Title:         Ptr("The Hidden Psychology of Color in Marketing"),
			Hook:          Ptr("Companies spend millions studying how colors manipulate your buying decisions. Here's what they don't want you to know..."),
			Platform:      Ptr(PlatformInstagram),
			ViralityScore: Ptr(7),
			Content:       Ptr("Red means urgency and appetite. Blue means trust. Green means health and money. Yellow means happiness and caution. Purple means luxury.\n\nNext time you shop, notice how color changes your mood.\n\nWhich brand color trick have you noticed?"),
			Status:        Ptr(StageFilmed),
		},
		{
			Title:         Ptr("Why Smart People Make Bad Decisions"),
			Hook:          Ptr("Intelligence doesn't protect you from making terrible choices. In fact, it might make you more vulnerable to these cognitive traps..."),
			Platform:      Ptr(PlatformInstagram),
			ViralityScore: Ptr(8),
			Content:       Ptr("1. Overconfidence bias\n2. Analysis paralysis\n3. Sunk cost fallacy\n4. Confirmation bias\n5. Complexity addiction\n6. Ego protection\n\nThe smartest move is admitting you're not immune.\n\nWhich bias do you struggle with most?"),
			Notes:         Ptr("Posted yesterday - good engagement so far"),
			Status:        Ptr(StagePosted),
		},
		{
			Title:         Ptr("The 3-Minute Morning Routine That Beats Meditation"),
			Hook:          Ptr("Forget 20-minute meditation sessions. This 3-minute routine reduces stress and boosts focus..."),
			Platform:      Ptr(PlatformInstagram),
			ViralityScore: Ptr(9),
			Content:       Ptr("The 3-3-3 reset:\n\n3 deep breaths (in 4, hold 4, out 6).\n3 specific things you're grateful for.\n3 intentions for how you want to show up today.\n\nThree minutes, every morning.\n\nWhat's your current morning routine?"),
			Notes:         Ptr("Great performance - lots of saves and shares"),
			Status:        Ptr(StageAnalytics),
			Analytics: &Analytics{
				Views:    847392,
				Likes:    23847,
				Comments: 1832,
				Shares:   4721,
			},
		},
	}

	cards := make([]Card, 0, len(samples))
	for _, f := range samples {
		cards = append(cards, NewCard(f))
	}
	return cards
}
