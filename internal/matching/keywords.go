package matching

import "strings"

// skillSynonyms maps a normalized skill name to extra keywords that count as
// evidence of that skill in ticket text. The skill's own name tokens are always
// included on top of these, so the table only carries true synonyms. The lists
// are fixed constants: reproducible matching matters more than completeness.
var skillSynonyms = map[string][]string{
	"networking":              {"network", "connectivity", "connection", "lan", "wan", "vpn", "dns"},
	"vpn_troubleshooting":     {"vpn", "tunnel", "remote", "disconnection", "dropped"},
	"network_security":        {"security", "firewall", "intrusion", "attack", "breach"},
	"firewall_configuration":  {"firewall", "port", "rule", "block"},
	"dns_configuration":       {"dns", "domain", "resolution", "nslookup"},
	"active_directory":        {"ad", "domain", "login", "authentication", "account", "sso"},
	"microsoft_365":           {"microsoft", "365", "office", "outlook", "email", "teams"},
	"windows_os":              {"windows", "desktop", "workstation", "pc"},
	"linux_administration":    {"linux", "unix", "permission", "chmod", "shell"},
	"mac_os":                  {"mac", "macos", "apple", "macbook"},
	"hardware_diagnostics":    {"hardware", "diagnostic", "component", "failure", "repair"},
	"laptop_repair":           {"laptop", "notebook", "boot", "battery"},
	"printer_troubleshooting": {"printer", "print", "queue", "toner", "paper"},
	"database_sql":            {"database", "sql", "query", "table", "slow"},
	"cloud_aws":               {"aws", "amazon", "cloud", "ec2", "s3"},
	"cloud_azure":             {"azure", "cloud", "microsoft"},
	"kubernetes_docker":       {"kubernetes", "docker", "container", "pod", "orchestration"},
	"devops_ci_cd":            {"devops", "pipeline", "deployment", "build", "jenkins"},
	"endpoint_security":       {"endpoint", "malware", "virus", "antivirus", "protection"},
	"phishing_analysis":       {"phishing", "email", "suspicious", "spam"},
	"ssl_certificates":        {"ssl", "certificate", "https", "encryption", "expired"},
	"api_troubleshooting":     {"api", "rest", "integration", "webhook"},
	"voice_voip":              {"voip", "voice", "phone", "sip", "calling"},
	"virtualization_vmware":   {"vmware", "virtual", "vm", "hypervisor"},
	"software_licensing":      {"license", "activation", "key"},
	"powershell_scripting":    {"powershell", "script", "cmdlet", "automation"},
	"python_scripting":        {"python", "script", "automation"},
}

// Index maps normalized skill names to their keyword sets. It is derived from
// one agent pool at the start of a run and never mutated afterwards.
type Index struct {
	keywords map[string]map[string]struct{}
}

// NormalizeSkill canonicalizes a skill name for index lookups.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NewIndex builds the keyword index for every skill name in vocabulary.
// A skill always matches its own name tokens; curated synonyms are added when
// the table knows the skill.
func NewIndex(vocabulary []string) *Index {
	idx := &Index{keywords: make(map[string]map[string]struct{}, len(vocabulary))}
	for _, skill := range vocabulary {
		norm := NormalizeSkill(skill)
		if norm == "" {
			continue
		}
		set := idx.keywords[norm]
		if set == nil {
			set = make(map[string]struct{})
			idx.keywords[norm] = set
		}
		for token := range Tokenize(strings.ReplaceAll(norm, "_", " ")) {
			set[token] = struct{}{}
		}
		for _, syn := range skillSynonyms[norm] {
			set[syn] = struct{}{}
		}
	}
	return idx
}

// IndexFromSkills collects the skill vocabulary out of a set of skill maps.
func IndexFromSkills(skillSets ...map[string]int) *Index {
	var vocab []string
	for _, skills := range skillSets {
		for skill := range skills {
			vocab = append(vocab, skill)
		}
	}
	return NewIndex(vocab)
}

// KeywordsFor returns the keyword set for a skill. Unknown skills yield an
// empty set, never an error. The result is a copy; mutating it cannot reach
// the index.
func (idx *Index) KeywordsFor(skill string) map[string]struct{} {
	set := idx.keywords[NormalizeSkill(skill)]
	out := make(map[string]struct{}, len(set))
	for kw := range set {
		out[kw] = struct{}{}
	}
	return out
}

// Size reports how many skills the index covers.
func (idx *Index) Size() int {
	return len(idx.keywords)
}
