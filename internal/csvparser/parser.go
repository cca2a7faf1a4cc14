// Package csvparser は管理画面からアップロードされる問題CSVを読み込みます。
//
// フォーマット: chapter_id,chapter_name,question_text,correct_answer,explanation
// correct_answer は 0/1/true/false/○/× (大文字小文字は区別しない)
package csvparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const minColumns = 4

// Row はパースに成功した1行
type Row struct {
	Row           int     `json:"row"`
	ChapterID     string  `json:"chapterId"`
	ChapterName   string  `json:"chapterName"`
	QuestionText  string  `json:"questionText"`
	CorrectAnswer bool    `json:"correctAnswer"`
	Explanation   *string `json:"explanation"`
}

// RowError は行番号付きのエラー。Row はヘッダーを含めた1始まりの行番号 (CSVが空の場合は0)
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Result は1行でもエラーがあれば Success=false。Questions は成功した行のみ
type Result struct {
	Success   bool       `json:"success"`
	Questions []Row      `json:"questions"`
	Errors    []RowError `json:"errors"`
}

// rowInput は行バリデーション用
type rowInput struct {
	ChapterID     string `validate:"required"`
	ChapterName   string `validate:"required"`
	QuestionText  string `validate:"required"`
	CorrectAnswer string `validate:"answer_token"`
}

var answerTokens = map[string]bool{
	"0": true, "1": true, "true": true, "false": true, "○": true, "×": true,
}

var rowMessages = map[string]string{
	"ChapterID":     "分野IDは必須です",
	"ChapterName":   "分野名は必須です",
	"QuestionText":  "問題文は必須です",
	"CorrectAnswer": "正解は 0/1 または ○/× で指定してください",
}

var rowValidator = newRowValidator()

func newRowValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("answer_token", func(fl validator.FieldLevel) bool {
		return answerTokens[strings.ToLower(fl.Field().String())]
	}); err != nil {
		panic(err)
	}
	return v
}

// Parse はCSVテキストを行ごとに検証します。不正な行はエラーとして記録し、残りの行の処理を続けます
func Parse(text string) Result {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Result{
			Success:   false,
			Questions: []Row{},
			Errors:    []RowError{{Row: 0, Message: "CSVが空です"}},
		}
	}

	hasHeader := isHeader(lines[0])
	dataLines := lines
	if hasHeader {
		dataLines = lines[1:]
	}

	result := Result{Questions: []Row{}, Errors: []RowError{}}
	for i, line := range dataLines {
		rowNumber := i + 1
		if hasHeader {
			rowNumber = i + 2
		}

		row, err := parseRow(line, rowNumber)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNumber, Message: err.Error()})
			continue
		}
		result.Questions = append(result.Questions, row)
	}
	result.Success = len(result.Errors) == 0
	return result
}

func splitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func isHeader(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, "chapter_id") ||
		strings.Contains(l, "question_text") ||
		strings.Contains(l, "分野")
}

func parseRow(line string, rowNumber int) (row Row, err error) {
	// 1行の処理で想定外の失敗があってもバッチ全体は止めない
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("パースに失敗しました")
		}
	}()

	columns := SplitLine(line)
	if len(columns) < minColumns {
		return Row{}, fmt.Errorf("列数が不足しています（必要: %d以上, 実際: %d）", minColumns, len(columns))
	}
	// 検証は生の値で行い、出力する値だけ前後の空白を除く
	in := rowInput{
		ChapterID:     columns[0],
		ChapterName:   columns[1],
		QuestionText:  columns[2],
		CorrectAnswer: columns[3],
	}
	if err := rowValidator.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Row{}, errors.New("パースに失敗しました")
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, rowMessages[fe.StructField()])
		}
		return Row{}, errors.New(strings.Join(msgs, ", "))
	}

	var explanation *string
	if len(columns) > minColumns {
		if e := strings.TrimSpace(columns[4]); e != "" {
			explanation = &e
		}
	}

	answer := strings.TrimSpace(in.CorrectAnswer)
	return Row{
		Row:          rowNumber,
		ChapterID:    strings.TrimSpace(in.ChapterID),
		ChapterName:  strings.TrimSpace(in.ChapterName),
		QuestionText: strings.TrimSpace(in.QuestionText),
		// ○ は検証を通るが true としては扱わない (1/true のみ true)
		CorrectAnswer: answer == "1" || strings.ToLower(answer) == "true",
		Explanation:   explanation,
	}, nil
}

// SplitLine はダブルクォート対応で1行をカラムに分割します。
// クォート内の "" はリテラルの " になり、クォート内のカンマは区切りとみなしません
func SplitLine(line string) []string {
	var (
		columns  []string
		current  strings.Builder
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if inQuotes {
			switch {
			case c == '"' && i+1 < len(runes) && runes[i+1] == '"':
				current.WriteRune('"')
				i++
			case c == '"':
				inQuotes = false
			default:
				current.WriteRune(c)
			}
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case ',':
			columns = append(columns, current.String())
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	return append(columns, current.String())
}
