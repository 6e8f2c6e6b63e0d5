// Package catalog holds the fixed violation and geography data consumed
// by case creation, onboarding, and lawyer matching. Changing any of it
// is a deployment, not a runtime concern.
package catalog

// ConstitutionArticles lists the U.S. Constitution violation tags a case
// or lawyer specialty may carry.
var ConstitutionArticles = []string{
	"1st Amendment - Freedom of Speech, Religion, Press",
	"4th Amendment - Search and Seizure",
	"5th Amendment - Due Process, Self-Incrimination",
	"6th Amendment - Right to Fair Trial",
	"8th Amendment - Cruel and Unusual Punishment",
	"13th Amendment - Abolition of Slavery",
	"14th Amendment - Equal Protection, Due Process",
	"15th Amendment - Voting Rights (Race)",
	"19th Amendment - Voting Rights (Gender)",
}

var constitutionSet = toSet(ConstitutionArticles)

// IsConstitutionArticle reports whether tag is a known constitutional
// violation tag
func IsConstitutionArticle(tag string) bool {
	return constitutionSet[tag]
}

func toSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}
