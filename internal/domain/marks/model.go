package marks

import (
	"fmt"
	"strings"
)

// Subject - ключ предмета в черновике оценок
type Subject string

const (
	SubjectChemistry   Subject = "chemistry"
	SubjectMaths       Subject = "maths"
	SubjectPhysics     Subject = "physics"
	SubjectComputing   Subject = "computing"
	SubjectElectronics Subject = "electronics"
)

// Subjects - канонический порядок предметов
var Subjects = []Subject{
	SubjectChemistry,
	SubjectMaths,
	SubjectPhysics,
	SubjectComputing,
	SubjectElectronics,
}

// ParseSubject возвращает предмет по ключу
func ParseSubject(key string) (Subject, error) {
	s := Subject(strings.ToLower(strings.TrimSpace(key)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSubject, key)
	}
	return s, nil
}

func (s Subject) Valid() bool {
	for _, known := range Subjects {
		if s == known {
			return true
		}
	}
	return false
}

// Title - название предмета с заглавной буквы
func (s Subject) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Draft - незавершенный ввод оценок, всегда содержит все пять предметов
type Draft map[Subject]string

// NewDraft создает пустой черновик
func NewDraft() Draft {
	d := make(Draft, len(Subjects))
	for _, s := range Subjects {
		d[s] = ""
	}
	return d
}

// Clone возвращает копию черновика, отсутствующие предметы заполняются пустыми строками
func (d Draft) Clone() Draft {
	c := NewDraft()
	for _, s := range Subjects {
		c[s] = d[s]
	}
	return c
}

// Entry - отправленная запись оценок студента
type Entry struct {
	StudentName string   `json:"studentName"`
	Marks       []string `json:"marks"`
}

// Valid проверяет форму записи после загрузки из хранилища
func (e Entry) Valid() bool {
	return len(e.Marks) == len(Subjects)
}

// FormatLine форматирует строку "Subject: value", пустое значение заменяется на 0
func FormatLine(s Subject, value string) string {
	if strings.TrimSpace(value) == "" {
		value = "0"
	}
	return s.Title() + ": " + value
}

// NewEntry строит запись из черновика в каноническом порядке предметов
func NewEntry(studentName string, draft Draft) Entry {
	lines := make([]string, 0, len(Subjects))
	for _, s := range Subjects {
		lines = append(lines, FormatLine(s, draft[s]))
	}

	return Entry{
		StudentName: studentName,
		Marks:       lines,
	}
}

// Snapshot - сохраняемое состояние журнала
type Snapshot struct {
	StudentName string
	Entries     []Entry
}

// Group - записи одного студента
type Group struct {
	StudentName string  `json:"studentName"`
	Entries     []Entry `json:"entries"`
}

// GroupByStudent группирует записи по имени студента в порядке первого появления
func GroupByStudent(entries []Entry) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, e := range entries {
		i, ok := index[e.StudentName]
		if !ok {
			i = len(groups)
			index[e.StudentName] = i
			groups = append(groups, Group{StudentName: e.StudentName})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	return groups
}
