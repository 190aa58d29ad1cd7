package textnorm

// DefaultStopwords returns the built-in Spanish + English stopword
// union used by the term-frequency summarizer. Retrieved abstracts are
// in English while forum text is in Spanish, so both lists apply.
func DefaultStopwords() Stopwords {
	return NewStopwords(append(append([]string{}, spanishStopwords...), englishStopwords...))
}

var spanishStopwords = []string{
	"de", "la", "el", "y", "en", "los", "las", "por", "con", "para", "se", "del", "una", "un",
	"como", "que", "es", "su", "sus", "entre", "ha", "han", "este", "esta", "fue", "son",
	"o", "si", "no", "más", "sobre", "también", "porque", "cuando", "desde", "otros",
}

var englishStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "among", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before", "being", "below",
	"between", "both", "but", "by", "can", "cannot", "could", "did", "do", "does", "doing",
	"down", "during", "each", "few", "for", "from", "further", "had", "has", "have",
	"having", "he", "her", "here", "hers", "him", "his", "how", "however", "i", "if", "in",
	"into", "is", "it", "its", "itself", "may", "me", "more", "most", "must", "my", "nor",
	"not", "of", "off", "on", "once", "only", "or", "other", "our", "ours", "out", "over",
	"own", "per", "same", "she", "should", "so", "some", "such", "than", "that", "the",
	"their", "theirs", "them", "then", "there", "these", "they", "this", "those", "through",
	"to", "too", "under", "until", "up", "upon", "using", "very", "was", "we", "were",
	"what", "when", "where", "which", "while", "who", "whom", "why", "will", "with",
	"within", "without", "would", "you", "your", "yours",
}
