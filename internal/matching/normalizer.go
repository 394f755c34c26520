package matching

import (
	"strings"

	"github.com/cageside/fightcred/internal/domain"
)

// methodRules map free-text outcome descriptions onto the closed method
// vocabulary. Checked in priority order; first hit wins. Anything that
// matches nothing is a judges' decision.
var methodRules = []struct {
	needles []string
	method  domain.Method
}{
	{[]string{"tko", "ko", "knockout"}, domain.MethodTKOKO},
	{[]string{"submission", "choke", "lock", "triangle"}, domain.MethodSubmission},
	{[]string{"draw"}, domain.MethodDraw},
	{[]string{"no contest", "nc"}, domain.MethodNoContest},
}

// NormalizeMethod maps an external feed's free-text method description into
// the internal (method, finish type) pair.
// "Submission (rear naked choke)" -> (submission, finish)
// "Decision (unanimous)" -> (decision, decision)
func NormalizeMethod(text string) (domain.Method, domain.FinishType) {
	lower := strings.ToLower(text)

	for _, rule := range methodRules {
		for _, needle := range rule.needles {
			if strings.Contains(lower, needle) {
				return rule.method, domain.FinishTypeForMethod(rule.method)
			}
		}
	}

	return domain.MethodDecision, domain.FinishTypeDecision
}
