package catalog

// UDHRArticles lists the Universal Declaration of Human Rights violation
// tags a case or lawyer specialty may carry.
var UDHRArticles = []string{
	"Article 1 - All human beings are born free and equal",
	"Article 2 - Freedom from discrimination",
	"Article 3 - Right to life, liberty, and security",
	"Article 4 - Freedom from slavery",
	"Article 5 - Freedom from torture",
	"Article 6 - Right to recognition before the law",
	"Article 7 - Right to equality before the law",
	"Article 8 - Right to effective remedy",
	"Article 9 - Freedom from arbitrary arrest",
	"Article 10 - Right to fair trial",
	"Article 11 - Presumption of innocence",
	"Article 12 - Right to privacy",
	"Article 13 - Freedom of movement",
	"Article 14 - Right to asylum",
	"Article 15 - Right to nationality",
	"Article 18 - Freedom of thought and religion",
	"Article 19 - Freedom of opinion and expression",
	"Article 20 - Freedom of assembly",
	"Article 21 - Right to participate in government",
	"Article 23 - Right to work",
	"Article 25 - Right to adequate standard of living",
}

var udhrSet = toSet(UDHRArticles)

// IsUDHRArticle reports whether tag is a known UDHR violation tag
func IsUDHRArticle(tag string) bool {
	return udhrSet[tag]
}
