package poem

// Tone bucket labels in slider order, from the softest end of the tone
// slider to the most intense.
var toneLabels = []string{"nostalgic", "tender", "playful", "passionate", "devotional"}

// templates maps style -> tone bucket -> candidate templates. Each template
// uses only the five known placeholders, so substitution always resolves
// every token.
var templates = map[string]map[string][]string{
	"free-verse": {
		"nostalgic": {
			`{emotion} like autumn leaves returning,
Memories drift through golden light.
In {setting}, we found each other,
Two souls writing poetry in silence.

Time has painted our love story
In shades of {metaphor},
Each moment a verse we'll never forget,
Each word a promise carved in time.`,

			`I remember {detail},
The way your eyes held starlight,
How {feeling} bloomed between us
Like flowers after winter's end.

In quiet moments, I still hear
The echo of your laughter,
See how {emotion} danced
In the spaces between our words.`,
		},
		"tender": {
			`In the gentle morning light,
Your {detail} speaks to me
Of love that needs no grand gestures,
Only the soft whisper of hearts aligned.

{emotion} flows between us
Like a river finding home,
Each touch a prayer, each glance
A promise written in {metaphor}.`,

			`Your presence is my sanctuary,
Where {feeling} finds its voice.
In {setting}, we discovered
Love's most tender dialect.

Every breath shared, every silence
Holds the weight of forever,
In your eyes, I see my soul
Reflected in {emotion}.`,
		},
		"playful": {
			`You make my heart do silly things,
Like {emotion} on a rainy day.
When we're together in {setting},
Even mundane moments turn to magic.

Your {detail} makes me smile,
The way you {feeling} without care.
Love with you is an adventure,
Written in {metaphor} and laughter.`,

			`Who knew {emotion} could be so fun?
You turn ordinary into extraordinary,
Make {setting} feel like playground
Where our hearts can dance and play.

In your silliness, I find my joy,
In your laughter, my favorite song.
Love shouldn't always be serious,
With you, it's {metaphor} and light.`,
		},
		"passionate": {
			`Fire meets fire when we collide,
{emotion} burns away the night.
In {setting}, desire speaks
A language only hearts can hear.

Your touch ignites my very core,
Sets {feeling} blazing wild,
Each kiss a flame that lights the way
To love's most {metaphor} depths.`,

			`You are the storm I choose to face,
The {emotion} that shakes my soul.
In your arms, I find the courage
To love with {feeling} unleashed.

Together we write symphonies
In {metaphor} and flame,
Each moment charged with electricity,
Each word a spark that lights forever.`,
		},
		"devotional": {
			`In sacred silence, I worship
The miracle of {emotion}.
You are my temple, my prayer,
The divine made {metaphor}.

In {setting}, I found God
Reflected in your gentle eyes.
Each day with you is holy ground,
Where {feeling} becomes sacrament.`,

			`My love for you transcends the flesh,
Becomes something {emotion} and pure.
In quiet devotion, I offer
My heart upon love's altar.

You are my creed, my sacred text,
The {metaphor} that lights my way.
In loving you, I find my purpose,
In your love, my eternal home.`,
		},
	},
	"shakespearean": {
		"tender": {
			`When gentle {emotion} doth grace thy face,
And {setting} holds our whispered vows,
My heart finds in thy love its resting place,
Where {feeling} like spring's sweet blossom grows.

Thy {detail} speaks what words cannot convey,
A language written in {metaphor}'s light,
That turns the ordinary into sacred day,
And makes each moment blessed beyond delight.

In thee I find what poets dare to dream,
A love that makes the very heavens sing.`,
		},
		"passionate": {
			`What {emotion} burns within these veins,
What fire consumes when thou art near!
In {setting}, passion's sweet refrains
Do make thy {detail} crystal clear.

My soul, a {metaphor} of desire,
Doth reach for thee with longing's flame,
Where {feeling} sets hearts on fire,
And love becomes our sacred claim.

No force on earth could tear apart
What passion writes upon the heart.`,
		},
	},
	"shayari": {
		"tender": {
			`तेरी {emotion} में छुपे हैं हज़ारों ख्वाब,
मेरी मोहब्बत का यही है हिसाब।
{setting} की याद में,
तुम्हारे बिना अधूरा है हर एक जवाब।

{detail} से मिली है जो खुशी,
वो {metaphor} की तरह है प्यारी।
तुम हो तो ज़िंदगी है, नहीं तो
सब कुछ लगता है अधूरा सा, भारी।`,

			`इश्क़ की इस {emotion} में,
तेरा नाम है सबसे प्यारा।
{setting} हो या कोई और जगह,
तू ही है मेरा सहारा।

{feeling} से भरी है ये दुनिया,
जब तू है मेरे साथ में।
{metaphor} की तरह चमकती है
तेरी मुस्कान मेरे हाथ में।`,
		},
	},
	"ghazal": {
		"passionate": {
			`हर सुबह तेरे {emotion} से शुरू होती है,
मेरी मोहब्बत की ये कहानी होती है।

{setting} में तेरे साथ बिताए पल,
मेरे दिल की हर {feeling} सुनती है।

तेरी {detail} में छुपा है जो जमाना,
वो मेरे ख्वाबों की {metaphor} होती है।

इश्क़ में हमने जो राह चुनी है,
वो सिर्फ़ हमारी मंज़िल होती है।`,
		},
	},
	"cute": {
		"playful": {
			`You're my favorite {emotion} ever! 💕
Like a {metaphor} in my pocket,
Making every day in {setting}
Feel like a warm, fuzzy blanket.

Your {detail} makes me go "awww"
And your {feeling} makes me smile.
Being with you is like having
The cutest puppy for a while!

P.S. You're sweeter than ice cream! 🍦`,

			`Roses are red, violets are blue,
{emotion} is what I feel with you!
In {setting}, we laugh and play,
You make my heart go "yay!" all day.

Your {detail} is absolutely adorable,
Makes me feel all {feeling} and more-able
To love you like a {metaphor},
Forever and a day! 💖`,
		},
	},
}
