package matching

import "testing"

func TestKeywordsForUnknownSkill(t *testing.T) {
	idx := NewIndex([]string{"Networking"})
	if got := idx.KeywordsFor("Quantum_Computing"); len(got) != 0 {
		t.Fatalf("expected empty set for unknown skill, got %v", got)
	}
}

func TestKeywordsForIncludesNameTokensAndSynonyms(t *testing.T) {
	idx := NewIndex([]string{"VPN_Troubleshooting"})
	kws := idx.KeywordsFor("VPN_Troubleshooting")
	for _, want := range []string{"vpn", "troubleshooting", "tunnel"} {
		if _, ok := kws[want]; !ok {
			t.Fatalf("expected keyword %q, got %v", want, kws)
		}
	}
}

func TestKeywordsForCaseInsensitiveLookup(t *testing.T) {
	idx := NewIndex([]string{"Networking"})
	if len(idx.KeywordsFor("networking")) == 0 {
		t.Fatalf("expected lookup to normalize skill name case")
	}
}

func TestIndexFromSkillsCollectsVocabulary(t *testing.T) {
	idx := IndexFromSkills(
		map[string]int{"Networking": 8},
		map[string]int{"Mac_OS": 5, "Networking": 3},
	)
	if idx.Size() != 2 {
		t.Fatalf("expected 2 indexed skills, got %d", idx.Size())
	}
}

func TestExtractKeywordsNormalization(t *testing.T) {
	m := NewMatcher(0, nil)
	a := m.ExtractKeywords("VPN issue!!")
	b := m.ExtractKeywords("vpn issue")
	if len(a) != len(b) {
		t.Fatalf("expected identical token sets, got %v vs %v", a, b)
	}
	for token := range a {
		if _, ok := b[token]; !ok {
			t.Fatalf("token %q missing after normalization", token)
		}
	}
}

func TestExtractKeywordsDropsStopWordsAndShortTokens(t *testing.T) {
	m := NewMatcher(0, []string{"please"})
	tokens := m.ExtractKeywords("Please fix the VPN, it is down")
	for _, banned := range []string{"the", "is", "it", "please"} {
		if _, ok := tokens[banned]; ok {
			t.Fatalf("expected %q to be filtered, got %v", banned, tokens)
		}
	}
	if _, ok := tokens["vpn"]; !ok {
		t.Fatalf("expected vpn to survive filtering, got %v", tokens)
	}
}

func TestSkillMatchScoreZeroOnNoOverlap(t *testing.T) {
	idx := NewIndex([]string{"Printer_Troubleshooting"})
	m := NewMatcher(0, nil)
	score := m.SkillMatchScore("database deadlock on replica", map[string]int{"Printer_Troubleshooting": 9}, idx)
	if score != 0 {
		t.Fatalf("expected 0 score on zero overlap, got %f", score)
	}
}

func TestSkillMatchScoreSymmetricUnderNormalization(t *testing.T) {
	skills := map[string]int{"VPN_Troubleshooting": 7}
	idx := IndexFromSkills(skills)
	m := NewMatcher(0, nil)
	a := m.SkillMatchScore("VPN issue!!", skills, idx)
	b := m.SkillMatchScore("vpn issue", skills, idx)
	if a != b {
		t.Fatalf("expected identical scores, got %f vs %f", a, b)
	}
	if a == 0 {
		t.Fatalf("expected positive score for matching text")
	}
}

func TestSkillMatchScoreMonotonicInProficiency(t *testing.T) {
	idx := NewIndex([]string{"Networking"})
	m := NewMatcher(0, nil)
	text := "VPN and network outage"
	prev := 0.0
	for level := 1; level <= 10; level++ {
		score := m.SkillMatchScore(text, map[string]int{"Networking": level}, idx)
		if score < prev {
			t.Fatalf("score decreased at level %d: %f < %f", level, score, prev)
		}
		prev = score
	}
}

func TestSkillMatchScoreStableAcrossRepeatedCalls(t *testing.T) {
	// Summation order must not depend on map iteration: the same inputs
	// have to produce bit-identical scores every time.
	skills := map[string]int{"aaa": 1, "bbb": 2, "ccc": 3}
	idx := IndexFromSkills(skills)
	m := NewMatcher(0, nil)

	first := m.SkillMatchScore("aaa bbb ccc", skills, idx)
	for i := 0; i < 200; i++ {
		if got := m.SkillMatchScore("aaa bbb ccc", skills, idx); got != first {
			t.Fatalf("score changed between identical calls: %v vs %v", got, first)
		}
	}
}

func TestKeywordsForReturnsCopy(t *testing.T) {
	idx := NewIndex([]string{"Networking"})
	kws := idx.KeywordsFor("Networking")
	kws["injected"] = struct{}{}
	delete(kws, "network")

	fresh := idx.KeywordsFor("Networking")
	if _, ok := fresh["injected"]; ok {
		t.Fatalf("mutating the returned set reached the index: %v", fresh)
	}
	if _, ok := fresh["network"]; !ok {
		t.Fatalf("deleting from the returned set reached the index: %v", fresh)
	}
}

func TestSkillMatchScoreCappedAtOne(t *testing.T) {
	skills := map[string]int{
		"Networking":          10,
		"VPN_Troubleshooting": 10,
		"DNS_Configuration":   10,
		"Network_Security":    10,
	}
	idx := IndexFromSkills(skills)
	m := NewMatcher(0, nil)
	text := "network vpn dns firewall security tunnel domain connectivity connection lan wan resolution nslookup intrusion attack breach remote dropped disconnection networking troubleshooting configuration"
	if score := m.SkillMatchScore(text, skills, idx); score > 1 {
		t.Fatalf("expected score capped at 1, got %f", score)
	}
}
