package planner

type activity struct {
	Title       string
	Description string
}

// 学习时长（分钟）循环使用
var durations = []int{60, 90, 120}

var sectionActivities = map[uint][]activity{
	SectionReading: {
		{"Reading Practice: Skimming and Scanning", "Practice skimming for main ideas and scanning for specific information in IELTS-style passages."},
		{"Reading Practice: Vocabulary in Context", "Focus on understanding vocabulary in context and identifying synonyms in reading passages."},
		{"Reading Practice: True/False/Not Given Questions", "Practice identifying whether statements are true, false, or not given based on the text."},
		{"Reading Practice: Matching Headings", "Work on matching headings to paragraphs and understanding paragraph main ideas."},
		{"Reading Practice: Multiple Choice Questions", "Practice answering multiple choice questions by eliminating incorrect options."},
	},
	SectionWriting: {
		{"Writing Practice: Task 1 (Graph Description)", "Practice describing graphs, charts, and tables using appropriate structure and vocabulary."},
		{"Writing Practice: Task 1 (Process Description)", "Practice describing processes and diagrams using appropriate sequencing language."},
		{"Writing Practice: Task 2 (Essay Structure)", "Focus on essay structure, including introduction, body paragraphs, and conclusion."},
		{"Writing Practice: Task 2 (Argument Development)", "Practice developing arguments, providing examples, and expressing opinions clearly."},
		{"Writing Practice: Grammar and Vocabulary Review", "Review common grammar mistakes and expand vocabulary for formal writing."},
	},
	SectionListening: {
		{"Listening Practice: Section 1 (Form Completion)", "Practice form completion tasks focusing on spelling and number recognition."},
		{"Listening Practice: Section 2 (Note Taking)", "Practice taking notes and identifying key information from monologues."},
		{"Listening Practice: Section 3 (Multiple Choice)", "Practice multiple choice questions and identifying detailed information."},
		{"Listening Practice: Section 4 (Summary Completion)", "Practice summary completion tasks from academic lectures."},
		{"Listening Practice: Understanding Speaker Opinions", "Focus on identifying opinions, attitudes, and purpose of speakers."},
	},
	SectionSpeaking: {
		{"Speaking Practice: Part 1 (Introduction and Interview)", "Practice answering common Part 1 questions about yourself and familiar topics."},
		{"Speaking Practice: Part 2 (Individual Long Turn)", "Practice 2-minute talks on given topics, focusing on organization and timing."},
		{"Speaking Practice: Part 3 (Two-way Discussion)", "Practice discussing abstract concepts and providing detailed responses."},
		{"Speaking Practice: Pronunciation and Fluency", "Work on pronunciation, intonation, and speaking fluently without hesitation."},
		{"Speaking Practice: Vocabulary for Common Topics", "Build vocabulary for common IELTS speaking topics and practice using them."},
	},
}

// activitiesFor 返回某部分的活动列表
func activitiesFor(sectionID uint) ([]activity, bool) {
	list, ok := sectionActivities[sectionID]
	return list, ok && len(list) > 0
}
