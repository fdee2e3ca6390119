package keywords

// stopwords are tokens excluded from extraction. The list covers common
// English function words plus job-posting boilerplate that carries no
// screening signal ("candidate", "experience", "opportunity").
var stopwords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"all": true, "also": true, "an": true, "and": true, "any": true,
	"are": true, "as": true, "at": true, "be": true, "because": true,
	"been": true, "before": true, "being": true, "below": true, "between": true,
	"both": true, "but": true, "by": true, "can": true, "could": true,
	"did": true, "do": true, "does": true, "doing": true, "down": true,
	"during": true, "each": true, "few": true, "for": true, "from": true,
	"further": true, "had": true, "has": true, "have": true, "having": true,
	"he": true, "her": true, "here": true, "hers": true, "him": true,
	"his": true, "how": true, "i": true, "if": true, "in": true,
	"into": true, "is": true, "it": true, "its": true, "just": true,
	"more": true, "most": true, "my": true, "no": true, "nor": true,
	"not": true, "now": true, "of": true, "off": true, "on": true,
	"once": true, "only": true, "or": true, "other": true, "our": true,
	"out": true, "over": true, "own": true, "same": true, "she": true,
	"should": true, "so": true, "some": true, "such": true, "than": true,
	"that": true, "the": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "those": true,
	"through": true, "to": true, "too": true, "under": true, "until": true,
	"up": true, "very": true, "was": true, "we": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"who": true, "whom": true, "why": true, "will": true, "with": true,
	"would": true, "you": true, "your": true, "yours": true,

	// job-posting boilerplate
	"ability": true, "applicant": true, "apply": true, "benefits": true,
	"candidate": true, "candidates": true, "company": true, "day": true,
	"employee": true, "employees": true, "equal": true, "experience": true,
	"ideal": true, "including": true, "job": true, "join": true,
	"looking": true, "new": true, "opportunity": true, "people": true,
	"please": true, "position": true, "preferred": true, "required": true,
	"requirements": true, "responsibilities": true, "role": true,
	"salary": true, "seeking": true, "skills": true, "strong": true,
	"team": true, "time": true, "work": true, "working": true,
	"year": true, "years": true,
}
