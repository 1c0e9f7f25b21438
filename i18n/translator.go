package i18n

// Translator retrieves localized messages for validation message codes.
// data provides optional metadata to embed in the message (for example,
// "n" or "date").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. The "en"
// dictionary is the normative default copy of the value-validation pipeline;
// hosts that need different wording supply a custom message on the rule or
// replace the Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	get := func(k string) string { return data[k] }
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "この項目は必須です"
		case "selection_required":
			return "少なくとも1つ選択してください"
		case "min_length":
			return get("n") + "文字以上で入力してください"
		case "max_length":
			return get("n") + "文字以内で入力してください"
		case "pattern":
			return "形式が不正です"
		case "invalid_pattern":
			return "検証パターンが不正です"
		case "not_a_number":
			return "数値を入力してください"
		case "number_min":
			return get("n") + "以上で入力してください"
		case "number_max":
			return get("n") + "以下で入力してください"
		case "whole_number":
			return "整数で入力してください"
		case "multiple_of":
			return get("n") + "の倍数で入力してください"
		case "invalid_selection":
			return "選択値が不正です"
		case "invalid_multi_selection":
			return "不正な選択値が含まれています"
		case "min_selections":
			return get("n") + "件以上選択してください"
		case "max_selections":
			return get("n") + "件以内で選択してください"
		case "invalid_date":
			return "日付が不正です"
		case "date_min":
			return get("date") + "以降の日付を指定してください"
		case "date_max":
			return get("date") + "以前の日付を指定してください"
		case "min_items":
			return get("n") + "件以上追加してください"
		case "max_items":
			return get("n") + "件以内にしてください"
		}
	default: // "en"
		switch code {
		case "required":
			return "This field is required"
		case "selection_required":
			return "At least one selection is required"
		case "min_length":
			return "Must be at least " + get("n") + " characters"
		case "max_length":
			return "Must be at most " + get("n") + " characters"
		case "pattern":
			return "Invalid format"
		case "invalid_pattern":
			return "Invalid validation pattern"
		case "not_a_number":
			return "Must be a number"
		case "number_min":
			return "Must be at least " + get("n")
		case "number_max":
			return "Must be at most " + get("n")
		case "whole_number":
			return "Must be a whole number"
		case "multiple_of":
			return "Must be a multiple of " + get("n")
		case "invalid_selection":
			return "Invalid selection"
		case "invalid_multi_selection":
			return "Contains invalid selection"
		case "min_selections":
			return "Select at least " + get("n")
		case "max_selections":
			return "Select at most " + get("n")
		case "invalid_date":
			return "Invalid date"
		case "date_min":
			return "Date must be on or after " + get("date")
		case "date_max":
			return "Date must be on or before " + get("date")
		case "min_items":
			return "Add at least " + get("n") + " items"
		case "max_items":
			return "Add at most " + get("n") + " items"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
