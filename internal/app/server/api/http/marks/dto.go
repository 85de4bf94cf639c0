package marks

import (
	"markskeeper/internal/app/client"
	"markskeeper/internal/domain/marks"
)

type ledgerInput struct{}

type ledgerOutput struct {
	Body LedgerResponse
}

type LedgerResponse struct {
	StudentName string            `json:"studentName"`
	Draft       map[string]string `json:"draft"`
	Entries     []marks.Entry     `json:"entries"`
	Groups      []marks.Group     `json:"groups"`
}

type draftFieldInput struct {
	Subject string `path:"subject" enum:"chemistry,maths,physics,computing,electronics" doc:"Ключ предмета"`
	Body    DraftFieldRequest
}

type DraftFieldRequest struct {
	Value string `json:"value" doc:"Оценка, пустая строка очищает поле"`
}

type studentInput struct {
	Body StudentRequest
}

type StudentRequest struct {
	StudentName string `json:"studentName"`
}

type submitInput struct {
	Body SubmitRequest
}

type SubmitRequest struct {
	StudentName string            `json:"studentName" doc:"Имя студента"`
	Marks       map[string]string `json:"marks,omitempty" doc:"Оценки по ключам предметов, отсутствующие считаются пустыми"`
}

type entryOutput struct {
	Body marks.Entry
}

func ledgerFromView(v client.View) LedgerResponse {
	draft := make(map[string]string, len(v.Draft))
	for s, value := range v.Draft {
		draft[string(s)] = value
	}

	return LedgerResponse{
		StudentName: v.StudentName,
		Draft:       draft,
		Entries:     v.Entries,
		Groups:      v.Groups,
	}
}
