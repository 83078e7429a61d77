package turkmorph

import "strings"

// Morpheme is a grammatical suffix category. Morphemes are defined once
// as part of the graph and shared by reference across all analyses.
type Morpheme struct {
	// ID is the stable symbolic identifier (e.g. "P3sg", "Loc").
	ID string
	// Name is the human-readable description.
	Name string
	// Derivational marks morphemes that change the part of speech.
	Derivational bool
	// DerivedPOS is the resulting part of speech, valid only when
	// Derivational is set.
	DerivedPOS PartOfSpeech
}

func (m *Morpheme) String() string { return m.ID }

// The shared morpheme inventory. IDs follow the conventional Turkish
// morphology tag set.
var (
	// Nominal inflection.
	MorphA3pl = &Morpheme{ID: "A3pl", Name: "Plural"}
	MorphP1sg = &Morpheme{ID: "P1sg", Name: "FirstPersonSingularPossessive"}
	MorphP2sg = &Morpheme{ID: "P2sg", Name: "SecondPersonSingularPossessive"}
	MorphP3sg = &Morpheme{ID: "P3sg", Name: "ThirdPersonSingularPossessive"}
	MorphP1pl = &Morpheme{ID: "P1pl", Name: "FirstPersonPluralPossessive"}
	MorphP2pl = &Morpheme{ID: "P2pl", Name: "SecondPersonPluralPossessive"}
	MorphP3pl = &Morpheme{ID: "P3pl", Name: "ThirdPersonPluralPossessive"}
	MorphDat  = &Morpheme{ID: "Dat", Name: "Dative"}
	MorphLoc  = &Morpheme{ID: "Loc", Name: "Locative"}
	MorphAbl  = &Morpheme{ID: "Abl", Name: "Ablative"}
	MorphGen  = &Morpheme{ID: "Gen", Name: "Genitive"}
	MorphAcc  = &Morpheme{ID: "Acc", Name: "Accusative"}
	MorphIns  = &Morpheme{ID: "Ins", Name: "Instrumental"}

	// Nominal derivation.
	MorphNess    = &Morpheme{ID: "Ness", Name: "Abstractness", Derivational: true, DerivedPOS: POSNoun}
	MorphAgt     = &Morpheme{ID: "Agt", Name: "Agent", Derivational: true, DerivedPOS: POSNoun}
	MorphWith    = &Morpheme{ID: "With", Name: "With", Derivational: true, DerivedPOS: POSAdjective}
	MorphWithout = &Morpheme{ID: "Without", Name: "Without", Derivational: true, DerivedPOS: POSAdjective}

	// Copula and nominal predication.
	MorphCop   = &Morpheme{ID: "Cop", Name: "Copula"}
	MorphA1sgN = &Morpheme{ID: "A1sg", Name: "FirstPersonSingular"}
	MorphA2sgN = &Morpheme{ID: "A2sg", Name: "SecondPersonSingular"}
	MorphA1plN = &Morpheme{ID: "A1pl", Name: "FirstPersonPlural"}
	MorphA2plN = &Morpheme{ID: "A2pl", Name: "SecondPersonPlural"}

	// Verbal inflection.
	MorphNeg  = &Morpheme{ID: "Neg", Name: "Negation"}
	MorphPast = &Morpheme{ID: "Past", Name: "PastTense"}
	MorphNarr = &Morpheme{ID: "Narr", Name: "NarrativePast"}
	MorphProg = &Morpheme{ID: "Prog1", Name: "Progressive"}
	MorphFut  = &Morpheme{ID: "Fut", Name: "Future"}
	MorphAor  = &Morpheme{ID: "Aor", Name: "Aorist"}
	MorphCond = &Morpheme{ID: "Cond", Name: "Conditional"}
	MorphInf  = &Morpheme{ID: "Inf", Name: "Infinitive", Derivational: true, DerivedPOS: POSNoun}

	// Informal register.
	MorphProgInformal = &Morpheme{ID: "Prog1Informal", Name: "ColloquialProgressive"}
	MorphFutInformal  = &Morpheme{ID: "FutInformal", Name: "ColloquialFuture"}
	MorphQues         = &Morpheme{ID: "Ques", Name: "QuestionParticle"}
)

// State is a node of the morphotactics graph. States are immutable after
// graph construction; the graph is read-only during analysis.
type State struct {
	// ID names the state for debugging.
	ID string
	// Terminal marks states where a derivation may legally end.
	Terminal bool

	transitions []Transition
}

// Transition is a directed edge of the graph, labeled with the morpheme
// it emits and the surface template realizing it. The template together
// with the preceding-surface context forms the phonetic guard: a
// transition fires only when the template realizes to a surface matching
// the unconsumed input.
type Transition struct {
	To       *State
	Morpheme *Morpheme
	Template string
}

// Transitions returns the outgoing edges of s.
func (s *State) Transitions() []Transition {
	return s.transitions
}

func (s *State) add(m *Morpheme, template string, to *State) {
	s.transitions = append(s.transitions, Transition{To: to, Morpheme: m, Template: template})
}

// Realize expands a surface template against the preceding surface
// context. Template metacharacters:
//
//	A   two-way harmony vowel (a/e), resolved by the last vowel
//	I   four-way harmony vowel (ı/i/u/ü), resolved by the last vowel
//	>c  consonant hardening: realized voiceless after a voiceless
//	    consonant (d→t, c→ç)
//	+x  optional first segment: a vowel is dropped after a vowel-final
//	    surface, a consonant is inserted only after a vowel-final surface
//
// prevLast is the final rune of the surface built so far and lastVowel
// its governing harmony vowel. The function is pure.
func Realize(template string, prevLast, lastVowel rune) string {
	var sb strings.Builder
	runes := []rune(template)
	i := 0

	if len(runes) > 0 && runes[0] == '+' {
		if len(runes) < 2 {
			return ""
		}
		first := runes[1]
		prevVowel := IsVowel(prevLast)
		optionalIsVowel := first == 'A' || first == 'I' || IsVowel(first)
		if optionalIsVowel {
			// Optional vowel: dropped after a vowel-final surface.
			if prevVowel {
				i = 2
			} else {
				i = 1
			}
		} else {
			// Buffer consonant: inserted only after a vowel-final surface.
			if prevVowel {
				i = 1
			} else {
				i = 2
			}
		}
	}

	for ; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case 'A':
			sb.WriteRune(HarmonyA(lastVowel))
		case 'I':
			sb.WriteRune(HarmonyI(lastVowel))
		case '>':
			if i+1 >= len(runes) {
				return ""
			}
			i++
			c := runes[i]
			if IsVoiceless(prevLast) {
				switch c {
				case 'd':
					c = 't'
				case 'c':
					c = 'ç' // ç
				}
			}
			sb.WriteRune(c)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Morphotactics is the morpheme-transition graph for one variant
// (strict or informal). It is built once and read-only afterwards, so it
// may be shared across any number of concurrent analyses.
type Morphotactics struct {
	informal bool

	nounS    *State
	nounA3pl *State
	nounPoss *State
	nounP3sg *State
	nounCase *State
	pred     *State
	ques     *State

	verbRoot *State
	verbNeg  *State
	verbPast *State // past/conditional tense group (bare person endings)
	verbPres *State // narrative/progressive/future/aorist group
	verbPers *State
	verbInf  *State

	otherS *State
}

// NewMorphotactics builds the graph. With informal set, colloquial
// suffix paths are added on top of the strict graph.
func NewMorphotactics(informal bool) *Morphotactics {
	m := &Morphotactics{
		informal: informal,

		nounS:    &State{ID: "noun_S", Terminal: true},
		nounA3pl: &State{ID: "noun_A3pl", Terminal: true},
		nounPoss: &State{ID: "noun_Poss", Terminal: true},
		nounP3sg: &State{ID: "noun_P3sg", Terminal: true},
		nounCase: &State{ID: "noun_Case", Terminal: true},
		pred:     &State{ID: "pred", Terminal: true},
		ques:     &State{ID: "ques", Terminal: true},

		verbRoot: &State{ID: "verb_root", Terminal: true},
		verbNeg:  &State{ID: "verb_Neg", Terminal: false},
		verbPast: &State{ID: "verb_Past", Terminal: true},
		verbPres: &State{ID: "verb_Pres", Terminal: true},
		verbPers: &State{ID: "verb_Pers", Terminal: true},
		verbInf:  &State{ID: "verb_Inf", Terminal: true},

		otherS: &State{ID: "other_S", Terminal: true},
	}
	m.buildNominal()
	m.buildVerbal()
	if informal {
		m.buildInformal()
	}
	return m
}

// Informal reports whether the graph carries the colloquial paths.
func (m *Morphotactics) Informal() bool { return m.informal }

func (m *Morphotactics) buildNominal() {
	// Plural.
	m.nounS.add(MorphA3pl, "lAr", m.nounA3pl)

	// Possessives. P3sg gets its own state: case endings after it take
	// the pronominal n (evinde vs evimde).
	for _, s := range []*State{m.nounS, m.nounA3pl} {
		s.add(MorphP1sg, "+Im", m.nounPoss)
		s.add(MorphP2sg, "+In", m.nounPoss)
		s.add(MorphP3sg, "+sI", m.nounP3sg)
		s.add(MorphP1pl, "+ImIz", m.nounPoss)
		s.add(MorphP2pl, "+InIz", m.nounPoss)
	}
	m.nounS.add(MorphP3pl, "lArI", m.nounP3sg)

	// Case endings.
	for _, s := range []*State{m.nounS, m.nounA3pl, m.nounPoss} {
		s.add(MorphDat, "+yA", m.nounCase)
		s.add(MorphLoc, ">dA", m.nounCase)
		s.add(MorphAbl, ">dAn", m.nounCase)
		s.add(MorphGen, "+nIn", m.nounCase)
		s.add(MorphAcc, "+yI", m.nounCase)
		s.add(MorphIns, "+ylA", m.nounCase)
	}
	// Pronominal n after third-person possessives.
	m.nounP3sg.add(MorphDat, "nA", m.nounCase)
	m.nounP3sg.add(MorphLoc, "ndA", m.nounCase)
	m.nounP3sg.add(MorphAbl, "ndAn", m.nounCase)
	m.nounP3sg.add(MorphGen, "nIn", m.nounCase)
	m.nounP3sg.add(MorphAcc, "nI", m.nounCase)
	m.nounP3sg.add(MorphIns, "+ylA", m.nounCase)

	// Derivation loops back into the nominal chain.
	m.nounS.add(MorphNess, "lIk", m.nounS)
	m.nounS.add(MorphAgt, ">cI", m.nounS)
	m.nounS.add(MorphWith, "lI", m.nounS)
	m.nounS.add(MorphWithout, "sIz", m.nounS)

	// Nominal predication: evdedir, evdeyim, öğretmensin.
	for _, s := range []*State{m.nounS, m.nounA3pl, m.nounPoss, m.nounP3sg, m.nounCase} {
		s.add(MorphCop, ">dIr", m.pred)
		s.add(MorphA1sgN, "+yIm", m.pred)
		s.add(MorphA2sgN, "sIn", m.pred)
		s.add(MorphA1plN, "+yIz", m.pred)
		s.add(MorphA2plN, "sInIz", m.pred)
	}
}

func (m *Morphotactics) buildVerbal() {
	m.verbRoot.add(MorphNeg, "mA", m.verbNeg)

	// Past-definite and conditional take the bare person set
	// (geldi-m/-n/-k/-niz); the other tense group takes the full set
	// (gelmiş-im, geliyor-sun).
	for _, s := range []*State{m.verbRoot, m.verbNeg} {
		s.add(MorphPast, ">dI", m.verbPast)
		s.add(MorphCond, "sA", m.verbPast)
		s.add(MorphNarr, "mIş", m.verbPres)
		s.add(MorphProg, "+Iyor", m.verbPres)
		s.add(MorphFut, "+yAcAk", m.verbPres)
	}
	// Aorist has two stem-dependent allomorph families; both are offered
	// and the input decides (gelir vs bakar). Negative aorist is -mAz.
	m.verbRoot.add(MorphAor, "Ir", m.verbPres)
	m.verbRoot.add(MorphAor, "Ar", m.verbPres)
	m.verbRoot.add(MorphAor, "r", m.verbPres)
	m.verbNeg.add(MorphAor, "z", m.verbPres)

	m.verbPast.add(MorphA1sgN, "m", m.verbPers)
	m.verbPast.add(MorphA2sgN, "n", m.verbPers)
	m.verbPast.add(MorphA1plN, "k", m.verbPers)
	m.verbPast.add(MorphA2plN, "nIz", m.verbPers)
	m.verbPast.add(MorphA3pl, "lAr", m.verbPers)

	m.verbPres.add(MorphA1sgN, "+Im", m.verbPers)
	m.verbPres.add(MorphA2sgN, "sIn", m.verbPers)
	m.verbPres.add(MorphA1plN, "+Iz", m.verbPers)
	m.verbPres.add(MorphA2plN, "sInIz", m.verbPers)
	m.verbPres.add(MorphA3pl, "lAr", m.verbPers)

	// Chained past after narrative/progressive/future: gelmişti, gelecekti.
	m.verbPres.add(MorphPast, ">dI", m.verbPast)
	m.verbPres.add(MorphCond, "sA", m.verbPast)

	for _, s := range []*State{m.verbRoot, m.verbNeg} {
		s.add(MorphInf, "mAk", m.verbInf)
	}
}

// buildInformal adds the colloquial suffix paths: dropped-r progressive
// (geliyo), contracted future (gelcek, gelcem) and the attached question
// particle (geldimi).
func (m *Morphotactics) buildInformal() {
	for _, s := range []*State{m.verbRoot, m.verbNeg} {
		s.add(MorphProgInformal, "+Iyo", m.verbPres)
		s.add(MorphFutInformal, "+ycAk", m.verbPres)
		s.add(MorphFutInformal, "+ycAm", m.verbPers)
	}
	for _, s := range []*State{m.verbPast, m.verbPres, m.verbPers, m.pred} {
		s.add(MorphQues, "mI", m.ques)
	}
}

// EntryState returns the graph entry node for a lexical item's primary
// part of speech.
func (m *Morphotactics) EntryState(item *LexicalItem) *State {
	switch item.POS {
	case POSVerb:
		return m.verbRoot
	case POSNoun, POSAdjective, POSNumeral, POSPronoun, POSProperNoun:
		return m.nounS
	default:
		return m.otherS
	}
}
