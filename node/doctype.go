package node

import "strings"

// QuirksMode is the document-level rendering mode the parser derives from
// a DOCTYPE and records on ParsedDocument. The tree builder consults it in
// only the few spots spec.md names; it never changes tree shape elsewhere.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

var quirksPublicPrefixes = []string{
	"+//silmaril//dtd html pro v0r11 19970101//",
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0 level 1//",
	"-//ietf//dtd html 2.0 level 2//",
	"-//ietf//dtd html 2.0 strict level 1//",
	"-//ietf//dtd html 2.0 strict level 2//",
	"-//ietf//dtd html 2.0 strict//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 2.1e//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2 final//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html 3//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

const quirksPublicExact1 = "-//w3o//dtd w3 html strict 3.0//en//"
const quirksPublicExact2 = "-/w3c/dtd html 4.0 transitional/en"
const quirksPublicExact3 = "html"

const limitedQuirksPublicPrefix1 = "-//w3c//dtd xhtml 1.0 frameset//"
const limitedQuirksPublicPrefix2 = "-//w3c//dtd xhtml 1.0 transitional//"

var limitedQuirksWithSystemPrefixes = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}

const quirksSystemID = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"

// DetectQuirksMode implements the "quirks mode" predicates from the HTML5
// tree-construction "initial" insertion mode: it inspects the doctype's
// name, public identifier and system identifier (already lowercased by the
// caller is not assumed — case-folding happens here) and returns the
// resulting document mode. iframeSrcdoc suppresses quirks-mode inference
// entirely, per the iframeSrcdoc parsing option.
func DetectQuirksMode(d *Doctype, iframeSrcdoc bool) QuirksMode {
	if iframeSrcdoc {
		return NoQuirks
	}
	if d == nil {
		return Quirks
	}
	if d.ForceQuirks {
		return Quirks
	}
	if d.Name != "html" {
		return Quirks
	}

	pub := strings.ToLower(d.PublicID)
	sys := strings.ToLower(d.SystemID)

	if pub == quirksPublicExact3 {
		return Quirks
	}
	if pub == quirksPublicExact1 || pub == quirksPublicExact2 {
		return Quirks
	}
	for _, p := range quirksPublicPrefixes {
		if strings.HasPrefix(pub, p) {
			return Quirks
		}
	}
	if sys == quirksSystemID {
		return Quirks
	}
	if sys == "" {
		for _, p := range limitedQuirksWithSystemPrefixes {
			if strings.HasPrefix(pub, p) {
				return Quirks
			}
		}
	}

	if strings.HasPrefix(pub, limitedQuirksPublicPrefix1) || strings.HasPrefix(pub, limitedQuirksPublicPrefix2) {
		return LimitedQuirks
	}
	if sys != "" {
		for _, p := range limitedQuirksWithSystemPrefixes {
			if strings.HasPrefix(pub, p) {
				return LimitedQuirks
			}
		}
	}

	return NoQuirks
}
