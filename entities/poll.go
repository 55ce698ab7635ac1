package entities

import "github.com/fedisphere/fedxml/entity"

// Poll is a question with a set of answers, nested inside a
// StatusMessage.
type Poll struct {
	GUID     string `json:"guid" validate:"required,min=16"`
	Question string `json:"question" validate:"required"`
	Answers  []*PollAnswer
}

type PollAnswer struct {
	GUID   string `json:"guid" validate:"required,min=16"`
	Answer string `json:"answer" validate:"required"`
}

var PollType = &entity.Type{
	Name: "Poll",
	Tag:  "poll",
	Schema: []entity.PropertyDef{
		{Name: "guid", Kind: entity.Scalar},
		{Name: "question", Kind: entity.Scalar},
		{Name: "poll_answers", Kind: entity.RepeatedNested, Ref: PollAnswerType},
	},
	New: newPoll,
}

var PollAnswerType = &entity.Type{
	Name: "PollAnswer",
	Tag:  "poll_answer",
	Schema: []entity.PropertyDef{
		{Name: "guid", Kind: entity.Scalar},
		{Name: "answer", Kind: entity.Scalar},
	},
	New: newPollAnswer,
}

func init() {
	entity.MustRegister(PollType)
	entity.MustRegister(PollAnswerType)
}

func newPoll(p entity.Props) (entity.Entity, error) {
	poll := &Poll{
		GUID:     p.String("guid"),
		Question: p.String("question"),
	}
	for _, e := range p.Entities("poll_answers") {
		if answer, ok := e.(*PollAnswer); ok {
			poll.Answers = append(poll.Answers, answer)
		}
	}
	if err := entity.Validate(poll); err != nil {
		return nil, err
	}
	return poll, nil
}

func (p *Poll) EntityType() *entity.Type { return PollType }

func (p *Poll) Props() entity.Props {
	answers := make([]entity.Entity, 0, len(p.Answers))
	for _, answer := range p.Answers {
		answers = append(answers, answer)
	}
	return entity.Props{
		"guid":         p.GUID,
		"question":     p.Question,
		"poll_answers": answers,
	}
}

func newPollAnswer(p entity.Props) (entity.Entity, error) {
	answer := &PollAnswer{
		GUID:   p.String("guid"),
		Answer: p.String("answer"),
	}
	if err := entity.Validate(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (a *PollAnswer) EntityType() *entity.Type { return PollAnswerType }

func (a *PollAnswer) Props() entity.Props {
	return entity.Props{
		"guid":   a.GUID,
		"answer": a.Answer,
	}
}
