package i18n

// Translator retrieves localized messages for issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_root":
			return "ルートはオブジェクトである必要があります"
		case "empty_document":
			return "トークングループがありません"
		case "missing_schema":
			return "$schema がありません"
		case "unknown_key":
			return "未知の予約キーです"
		case "invalid_group":
			return "グループはオブジェクトである必要があります"
		case "invalid_brand":
			return "brand ブロックが不正です"
		case "missing_value":
			return "トークンに $value がありません"
		case "legacy_value_key":
			return "Legacy value key"
		case "legacy_type_key":
			return "Legacy type key"
		case "missing_type":
			return "Missing $type"
		case "unknown_type":
			return "未知のトークン型です"
		case "invalid_type":
			return "値の形が不正です"
		case "invalid_hex":
			return "16進カラー形式が不正です"
		case "invalid_dimension":
			return "寸法値が不正です"
		case "non_standard_unit":
			return "非標準の単位です"
		case "out_of_range":
			return "値が範囲外です"
		case "invalid_enum":
			return "許可されていない値です"
		case "missing_field":
			return "必須フィールドが不足しています"
		case "invalid_duration":
			return "時間値が不正です"
		case "nested_tokens":
			return "グループ内にトークンが入れ子になっています"
		case "fix_conflict":
			return "重複するパスの修正は適用できません"
		case "fix_path":
			return "修正パスを解決できません"
		case "parse_error":
			return "解析エラー"
		case "max_depth":
			return "ネストが深すぎます"
		}
	default: // "en"
		switch code {
		case "invalid_root":
			return "document root must be an object"
		case "empty_document":
			return "document contains no token groups"
		case "missing_schema":
			return "missing $schema"
		case "unknown_key":
			return "unrecognized reserved key"
		case "invalid_group":
			return "group must be an object"
		case "invalid_brand":
			return "invalid brand block"
		case "missing_value":
			return "token has no $value"
		case "legacy_value_key":
			return "Legacy value key"
		case "legacy_type_key":
			return "Legacy type key"
		case "missing_type":
			return "Missing $type"
		case "unknown_type":
			return "unknown token type"
		case "invalid_type":
			return "invalid value shape"
		case "invalid_hex":
			return "invalid hex color format"
		case "invalid_dimension":
			return "invalid dimension value"
		case "non_standard_unit":
			return "non-standard unit"
		case "out_of_range":
			return "value out of range"
		case "invalid_enum":
			return "value not in allowed set"
		case "missing_field":
			return "required field missing"
		case "invalid_duration":
			return "invalid duration value"
		case "nested_tokens":
			return "tokens nested inside a group-shaped node"
		case "fix_conflict":
			return "approved fixes target overlapping paths"
		case "fix_path":
			return "fix path cannot be resolved"
		case "parse_error":
			return "parse error"
		case "max_depth":
			return "maximum nesting depth exceeded"
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
