package fixture

// The labeled question set for the Apple Inc. fiscal 2024 Form 10-K that
// the filing QA bot is graded against. Expected answers are free-form
// prose and may embed the arithmetic used to read a table (the share
// figures in the repurchase table are in thousands).

var apple10KQuestions = []string{
	"How many shares were repurchased in September 2024 alone?",
	"What was Apple's total net sales for fiscal year 2024?",
	"What was net income for fiscal year 2024?",
	"What was iPhone net sales in fiscal 2024?",
	"What was Services net sales in fiscal 2024?",
	"What was diluted earnings per share for fiscal 2024?",
	"What quarterly dividend per share was declared in the fourth quarter of fiscal 2024?",
	"What was the effective tax rate for fiscal 2024?",
	"What was Apple's total term debt as of September 28, 2024?",
	"Approximately how many full-time equivalent employees did Apple have?",
}

var apple10KAnswers = []string{
	"33,653,000 (33,653 in table × 1,000)",
	"$391,035 million in total net sales",
	"Net income of $93,736 million",
	"iPhone net sales were $201,183 million",
	"Services net sales were $96,169 million",
	"Diluted earnings per share of $6.08",
	"$0.25 per share",
	"24.1% (reflects the one-time income tax charge from the State Aid decision)",
	"Total term debt of $96,700 million",
	"Approximately 164,000 full-time equivalent employees",
}

var apple10KPages = []int{22, 24, 24, 21, 21, 29, 22, 25, 26, 4}

// Apple10K returns the embedded Apple 10-K fixture set.
func Apple10K() *Slice {
	cases, err := FromTriples(apple10KQuestions, apple10KAnswers, apple10KPages)
	if err != nil {
		panic(err)
	}
	return NewSlice(cases, "apple-10k")
}
