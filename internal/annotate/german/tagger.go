package german

import (
	"strings"
	"unicode"

	"silbe/internal/annotate"
)

var determiners = wordSet(
	"der", "die", "das", "den", "dem", "des",
	"ein", "eine", "einen", "einem", "einer", "eines",
	"kein", "keine", "keinen", "keinem", "keiner", "keines",
	"dieser", "diese", "dieses", "diesen", "diesem",
	"jeder", "jede", "jedes", "jeden", "jedem",
	"mein", "meine", "meinen", "meinem", "meiner",
	"dein", "deine", "deinen", "deinem", "deiner",
	"sein", "seine", "seinen", "seinem", "seiner",
	"ihr", "ihre", "ihren", "ihrem", "ihrer",
	"unser", "unsere", "unseren", "unserem", "unserer",
	"euer", "eure", "euren", "eurem", "eurer",
)

var pronouns = wordSet(
	"ich", "du", "er", "sie", "es", "wir", "ihr",
	"mich", "dich", "sich", "uns", "euch",
	"mir", "dir", "ihm", "ihnen",
	"man", "wer", "wen", "wem", "was",
	"etwas", "nichts", "alles", "jemand", "niemand",
)

var prepositions = wordSet(
	"in", "im", "an", "am", "auf", "für", "mit", "nach", "bei", "beim",
	"von", "vom", "zu", "zum", "zur", "aus", "über", "unter", "vor",
	"hinter", "zwischen", "durch", "gegen", "ohne", "um", "bis", "seit",
	"trotz", "während", "wegen", "neben",
)

var conjunctions = wordSet(
	"und", "oder", "aber", "denn", "sondern",
	"dass", "weil", "wenn", "als", "ob", "obwohl", "damit", "bevor",
	"nachdem", "sobald", "falls",
)

var particles = wordSet(
	"nicht", "ja", "nein", "doch", "nur", "auch", "noch", "schon",
	"sehr", "mal", "eben", "halt", "bitte", "gern", "gerne",
)

var adverbs = wordSet(
	"heute", "morgen", "gestern", "jetzt", "dann", "hier", "dort", "da",
	"oben", "unten", "links", "rechts", "immer", "nie", "oft", "manchmal",
	"bald", "später", "früher", "wieder", "zusammen", "draußen", "drinnen",
	"so", "wie", "wo", "wann", "warum", "deshalb", "trotzdem", "vielleicht",
	"leider", "natürlich",
)

// verbs lists frequent finite forms: sein/haben/werden, the modals, and
// high-frequency lexical verbs a beginner-level corpus leans on.
var verbs = wordSet(
	"ist", "sind", "bin", "bist", "seid", "war", "waren", "warst",
	"hat", "habe", "hast", "habt", "haben", "hatte", "hatten",
	"wird", "werde", "wirst", "werden", "wurde", "wurden",
	"kann", "kannst", "können", "könnt", "konnte", "konnten",
	"muss", "musst", "müssen", "müsst", "musste", "mussten",
	"soll", "sollst", "sollen", "sollt", "sollte", "sollten",
	"will", "willst", "wollen", "wollt", "wollte", "wollten",
	"darf", "darfst", "dürfen", "dürft", "durfte", "durften",
	"mag", "magst", "mögen", "möchte", "möchten", "möchtest",
	"geht", "gehe", "gehst", "gehen", "ging", "gingen",
	"kommt", "komme", "kommst", "kommen", "kam", "kamen",
	"macht", "mache", "machst", "machen", "machte", "machten",
	"gibt", "gebe", "gibst", "geben", "gab", "gaben",
	"sagt", "sage", "sagst", "sagen", "sagte", "sagten",
	"sieht", "sehe", "siehst", "sehen", "sah", "sahen",
	"weiß", "weißt", "wissen", "wusste", "wussten",
	"heißt", "heiße", "heißen",
	"isst", "esse", "essen", "aß", "aßen",
	"trinkt", "trinke", "trinken", "trank", "tranken",
	"kocht", "koche", "kochen", "kochte", "kochten",
	"wohnt", "wohne", "wohnen", "wohnte", "wohnten",
	"arbeitet", "arbeite", "arbeiten", "arbeitete",
	"lernt", "lerne", "lernen", "lernte", "lernten",
	"spielt", "spiele", "spielen", "spielte", "spielten",
	"kauft", "kaufe", "kaufen", "kaufte", "kauften",
	"fährt", "fahre", "fährst", "fahren", "fuhr", "fuhren",
	"liest", "lese", "lesen", "las", "lasen",
	"schreibt", "schreibe", "schreiben", "schrieb", "schrieben",
	"spricht", "spreche", "sprichst", "sprechen", "sprach", "sprachen",
	"braucht", "brauche", "brauchen", "brauchte",
	"findet", "finde", "findest", "finden", "fand", "fanden",
	"nimmt", "nehme", "nimmst", "nehmen", "nahm", "nahmen",
	"bleibt", "bleibe", "bleiben", "blieb", "blieben",
	"steht", "stehe", "stehen", "stand", "standen",
	"läuft", "laufe", "läufst", "laufen", "lief", "liefen",
)

var numberWords = wordSet(
	"null", "eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben",
	"acht", "neun", "zehn", "elf", "zwölf", "dreizehn", "vierzehn",
	"fünfzehn", "sechzehn", "siebzehn", "achtzehn", "neunzehn",
	"zwanzig", "dreißig", "vierzig", "fünfzig", "sechzig", "siebzig",
	"achtzig", "neunzig", "hundert", "tausend", "million", "millionen",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// tagToken assigns a coarse part-of-speech tag. prev is the preceding word
// token (lowercased, empty at sentence start); first reports whether this is
// the first word token of the sentence.
func tagToken(token, prev string, first bool) string {
	if token == "" {
		return annotate.PosOther
	}
	if isPunct(token) {
		return annotate.PosPunct
	}
	if containsDigit(token) {
		return annotate.PosNum
	}

	lower := strings.ToLower(token)
	if _, ok := numberWords[lower]; ok {
		return annotate.PosNum
	}
	if _, ok := determiners[lower]; ok {
		return annotate.PosDet
	}
	if _, ok := pronouns[lower]; ok {
		return annotate.PosPron
	}
	if _, ok := prepositions[lower]; ok {
		return annotate.PosAdp
	}
	if _, ok := conjunctions[lower]; ok {
		return annotate.PosConj
	}
	if _, ok := particles[lower]; ok {
		return annotate.PosPart
	}
	if _, ok := adverbs[lower]; ok {
		return annotate.PosAdv
	}
	if _, ok := verbs[lower]; ok {
		return annotate.PosVerb
	}

	capitalized := unicode.IsUpper([]rune(token)[0])
	if capitalized && !first {
		return annotate.PosNoun
	}
	if !capitalized {
		if prev == "zu" && strings.HasSuffix(lower, "en") {
			return annotate.PosVerb
		}
		if isParticiple(lower) {
			return annotate.PosVerb
		}
		if adjBySuffix(lower) {
			return annotate.PosAdj
		}
		if verbBySuffix(lower) {
			return annotate.PosVerb
		}
		return annotate.PosOther
	}
	// Sentence-initial capitalized word that matched nothing: assume noun.
	return annotate.PosNoun
}

func verbBySuffix(lower string) bool {
	if len([]rune(lower)) < 4 {
		return false
	}
	// Second/third person singular endings. Keeps "kocht"-style forms the
	// closed list misses; nouns are capitalized in German so lowercase
	// tokens with these endings are almost always verbal.
	return strings.HasSuffix(lower, "st") || strings.HasSuffix(lower, "t")
}

func isParticiple(lower string) bool {
	if !strings.HasPrefix(lower, "ge") || len([]rune(lower)) < 5 {
		return false
	}
	return strings.HasSuffix(lower, "t") || strings.HasSuffix(lower, "en")
}

func adjBySuffix(lower string) bool {
	for _, suffix := range []string{"lich", "ig", "isch", "bar", "sam", "haft", "los"} {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func isPunct(token string) bool {
	for _, r := range token {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

func containsDigit(token string) bool {
	for _, r := range token {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
