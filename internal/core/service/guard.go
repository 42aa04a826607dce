package service

import (
	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
)

// guardEmails partitions the extracted addresses into those that provably
// came from the corpus and those that did not. Order of the kept subset is
// preserved and the original slice is returned untouched when nothing is
// dropped.
func guardEmails(emails []string, corpus *domain.Corpus) (kept, dropped []string) {
	clean := true
	for _, email := range emails {
		if !corpus.Knows(email) {
			clean = false
			break
		}
	}
	if clean {
		return emails, nil
	}

	kept = make([]string, 0, len(emails))
	for _, email := range emails {
		if corpus.Knows(email) {
			kept = append(kept, email)
		} else {
			dropped = append(dropped, email)
		}
	}
	return kept, dropped
}

// applyGuard runs guardEmails and logs any suspected hallucination. The drop
// is a silent correction, not an error.
func applyGuard(emails []string, corpus *domain.Corpus) []string {
	kept, dropped := guardEmails(emails, corpus)
	if len(dropped) > 0 {
		log.WithField("emails", dropped).Info("Hallucinated e-mail addresses removed from the result")
	}
	return kept
}
