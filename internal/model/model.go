package model

import "time"

// CEFRLevel is a level on the Common European Framework of Reference scale.
type CEFRLevel string

const (
	LevelA1 CEFRLevel = "A1"
	LevelA2 CEFRLevel = "A2"
	LevelB1 CEFRLevel = "B1"
	LevelB2 CEFRLevel = "B2"
	LevelC1 CEFRLevel = "C1"
	LevelC2 CEFRLevel = "C2"
)

// Levels lists all CEFR levels in ascending order.
var Levels = []CEFRLevel{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// Valid reports whether the level is one of the six CEFR levels.
func (l CEFRLevel) Valid() bool {
	for _, v := range Levels {
		if l == v {
			return true
		}
	}
	return false
}

// TextType is the register/genre the generated texts follow.
type TextType string

const (
	TypeInformalEmail TextType = "informal_email"
	TypeFormalEmail   TextType = "formal_email"
	TypeArticle       TextType = "article"
	TypeReport        TextType = "report"
	TypeStory         TextType = "story"
	TypeEssay         TextType = "essay"
	TypeBlogPost      TextType = "blog_post"
)

// TextTypes lists all supported text types.
var TextTypes = []TextType{
	TypeInformalEmail, TypeFormalEmail, TypeArticle,
	TypeReport, TypeStory, TypeEssay, TypeBlogPost,
}

// Valid reports whether the text type is supported.
func (t TextType) Valid() bool {
	for _, v := range TextTypes {
		if t == v {
			return true
		}
	}
	return false
}

// LengthChoice selects the overall length band of the generated texts.
type LengthChoice string

const (
	LengthShort    LengthChoice = "short"
	LengthStandard LengthChoice = "standard"
	LengthLong     LengthChoice = "long"
)

// Valid reports whether the length choice is supported.
func (l LengthChoice) Valid() bool {
	return l == LengthShort || l == LengthStandard || l == LengthLong
}

// QuestionType is the answer format of a worksheet question.
type QuestionType string

const (
	QuestionMCQ   QuestionType = "mcq"
	QuestionTF    QuestionType = "tf"
	QuestionTFNG  QuestionType = "tfng"
	QuestionShort QuestionType = "short"
)

// Valid reports whether the question type is one of the allowed set.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionMCQ, QuestionTF, QuestionTFNG, QuestionShort:
		return true
	}
	return false
}

// Skill is the language skill a question targets.
type Skill string

const (
	SkillComp        Skill = "comp"
	SkillSynonym     Skill = "synonym"
	SkillAntonym     Skill = "antonym"
	SkillGrammar     Skill = "grammar"
	SkillCollocation Skill = "collocation"
	SkillReference   Skill = "reference"
)

// Valid reports whether the skill is one of the allowed set.
func (s Skill) Valid() bool {
	switch s {
	case SkillComp, SkillSynonym, SkillAntonym, SkillGrammar, SkillCollocation, SkillReference:
		return true
	}
	return false
}

// Fact is one atomic canonical piece of information extracted from the
// source text. IDs are unique within a generation and stable once assigned.
type Fact struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Answer is one teacher-key entry mapping an answer id to its answer text.
type Answer struct {
	AnswerID string `json:"answer_id"`
	Answer   string `json:"answer"`
}

// Question is a single worksheet question. Both packs reference the shared
// teacher key through AnswerID.
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"prompt"`
	Answer        string       `json:"answer,omitempty"`
	AnswerID      string       `json:"answer_id"`
	Options       []string     `json:"options,omitempty"`
	CorrectOption *int         `json:"correct_option,omitempty"`
	Skill         Skill        `json:"skill"`
}

// QuestionsPerPack is the exact number of questions every pack carries.
const QuestionsPerPack = 8

// Pack pairs a reading text with its questions (standard or adapted variant).
type Pack struct {
	Text      string     `json:"text"`
	Questions []Question `json:"questions"`
}

// CEFRFocus holds the level-appropriate focus lists for a worksheet.
type CEFRFocus struct {
	Grammar    []string `json:"grammar"`
	Structures []string `json:"structures"`
	Vocabulary []string `json:"vocabulary"`
}

// Goals holds lesson goals and success criteria for the teacher.
type Goals struct {
	LessonGoals     []string  `json:"lesson_goals"`
	SuccessCriteria []string  `json:"success_criteria"`
	CEFRFocus       CEFRFocus `json:"cefr_focus"`
}

// PreteachItem is one vocabulary item to pre-teach before the reading.
type PreteachItem struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Note       string `json:"note,omitempty"`
}

// InputRecord echoes the request parameters into the teacher notes.
type InputRecord struct {
	Source           string `json:"source"`
	TargetCEFR       string `json:"target_cefr"`
	TextType         string `json:"text_type"`
	OutputLanguage   string `json:"output_language"`
	Length           string `json:"length"`
	DyslexiaFriendly bool   `json:"dyslexia_friendly"`
	PublicSchoolMode bool   `json:"public_school_mode"`
}

// TeacherNotes is the teacher-facing third sheet of a worksheet.
type TeacherNotes struct {
	InputRecord         InputRecord    `json:"input_record"`
	PreteachVocab       []PreteachItem `json:"preteach_vocab"`
	CEFRJustification   []string       `json:"cefr_justification"`
	ExtensionActivities []string       `json:"extension_activities"`
}

// Meta records what was requested and the computed word target.
type Meta struct {
	InputLanguage  string `json:"input_language"`
	OutputLanguage string `json:"output_language"`
	TargetCEFR     string `json:"target_cefr"`
	TextType       string `json:"text_type"`
	Length         string `json:"length"`
	WordTarget     int    `json:"word_target"`
}

// GenerationResult is the full assembled and validated worksheet pair.
// It is never mutated after validation succeeds.
type GenerationResult struct {
	Meta           Meta         `json:"meta"`
	Goals          Goals        `json:"goals"`
	CanonicalFacts []Fact       `json:"canonical_facts"`
	Standard       Pack         `json:"standard"`
	Adapted        Pack         `json:"adapted"`
	TeacherKey     []Answer     `json:"teacher_key"`
	TeacherNotes   TeacherNotes `json:"teacher_notes"`
}

// Worksheet is a stored generation result with its persistence metadata.
type Worksheet struct {
	ID             int64             `json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	Title          string            `json:"title"`
	TargetCEFR     string            `json:"target_cefr"`
	TextType       string            `json:"text_type"`
	OutputLanguage string            `json:"output_language"`
	Length         string            `json:"length"`
	WordTarget     int               `json:"word_target"`
	Result         *GenerationResult `json:"result,omitempty"`
}
