package service

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/medilink/backend/internal/model"
	"go.uber.org/zap"
)

const maxChatHistory = 10

const chatSystemPrompt = `You are MediLink Assistant, a health-information helper inside a mobile app.
Give short, plain-language general guidance about symptoms, common medicines and first aid.
Never diagnose, never prescribe, and never give dosages beyond what is printed on standard packaging.
Always recommend seeing a doctor or pharmacist for persistent or worsening symptoms.
If the user describes an emergency (chest pain, difficulty breathing, heavy bleeding, unconsciousness, stroke signs), tell them to call emergency services immediately.
Answer in the language the user writes in.`

//go:generate mockgen -destination=../mocks/chat_completer.go -package=mocks github.com/medilink/backend/internal/service ChatCompleter

// ChatCompleter is an LLM backend. Complete returns the assistant reply.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt string, history []model.ChatTurn, message string) (string, error)
}

type ChatService struct {
	llm    ChatCompleter
	logger *zap.Logger
}

// NewChatService builds the chat service. llm may be nil, in which case every
// reply comes from the keyword table.
func NewChatService(llm ChatCompleter, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{llm: llm, logger: logger}
}

func (s *ChatService) Chat(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	req.Message = strings.TrimSpace(req.Message)
	if len(req.History) > maxChatHistory {
		req.History = req.History[len(req.History)-maxChatHistory:]
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if s.llm != nil {
		reply, err := s.llm.Complete(ctx, chatSystemPrompt, req.History, req.Message)
		if err == nil && strings.TrimSpace(reply) != "" {
			return &model.ChatResponse{Reply: strings.TrimSpace(reply), Source: model.ChatSourceLLM}, nil
		}
		if err != nil {
			s.logger.Warn("llm completion failed, using fallback", zap.Error(err))
		}
	}

	return &model.ChatResponse{Reply: FallbackReply(req.Message), Source: model.ChatSourceFallback}, nil
}

type fallbackRule struct {
	keywords []string
	reply    string
}

// Rules are checked in order; emergencies come first. Keywords match at the
// start of a word.
var fallbackRules = []fallbackRule{
	{
		keywords: []string{"emergency", "chest pain", "can't breathe", "cannot breathe", "unconscious", "stroke", "seizure", "darurat"},
		reply:    "This may be an emergency. Call your local emergency number (112 or 119) right away or go to the nearest emergency room. Do not wait for symptoms to improve.",
	},
	{
		keywords: []string{"burn", "scald", "terbakar", "luka bakar"},
		reply:    "For a minor burn: cool the area under cool (not ice-cold) running water for 10-20 minutes, remove rings or tight items nearby, and cover loosely with a clean non-stick dressing. Do not apply butter, toothpaste or ice. Large, deep or facial burns need medical care.",
	},
	{
		keywords: []string{"bleeding", "cut", "wound", "luka", "berdarah"},
		reply:    "For a cut: wash your hands, apply firm pressure with a clean cloth until bleeding stops, rinse the wound with clean water and cover it with a sterile bandage. Seek care if bleeding does not stop after 10 minutes, the cut is deep, or it shows signs of infection.",
	},
	{
		keywords: []string{"allergy", "allergic", "rash", "hives", "itch", "alergi", "gatal"},
		reply:    "Mild allergic reactions such as itching or hives often respond to avoiding the trigger and an over-the-counter antihistamine. Swelling of the lips, tongue or throat, or trouble breathing is an emergency: call emergency services immediately.",
	},
	{
		keywords: []string{"fever", "temperature", "demam", "panas"},
		reply:    "For a fever: rest, drink plenty of fluids and wear light clothing. Paracetamol can help reduce fever when taken as directed on the label. See a doctor if the fever is above 39°C, lasts more than 3 days, or comes with a stiff neck, rash or confusion.",
	},
	{
		keywords: []string{"headache", "migraine", "sakit kepala", "pusing"},
		reply:    "For a headache: rest in a quiet, dark room, drink water and avoid screens. An over-the-counter pain reliever may help when used as directed. Seek urgent care for a sudden severe headache, or one with fever, stiff neck, weakness or vision changes.",
	},
	{
		keywords: []string{"cough", "batuk"},
		reply:    "For a cough: drink warm fluids, try honey (not for children under 1 year) and avoid smoke. See a doctor if the cough lasts more than 3 weeks, brings up blood, or comes with high fever or shortness of breath.",
	},
	{
		keywords: []string{"cold", "flu", "runny nose", "sore throat", "pilek"},
		reply:    "Common colds usually clear up in 7-10 days. Rest, stay hydrated, and use saline rinses or throat lozenges for comfort. Antibiotics do not help viral colds. See a doctor if symptoms worsen after a week or you have trouble breathing.",
	},
	{
		keywords: []string{"stomach", "diarrhea", "diarrhoea", "nausea", "vomit", "sakit perut", "diare", "mual"},
		reply:    "For stomach upset: sip water or oral rehydration solution often, eat bland foods once you can, and avoid fatty or spicy meals. Seek care for blood in stool or vomit, severe pain, signs of dehydration, or symptoms lasting more than 2 days.",
	},
}

const fallbackDefault = "I can share general information about common symptoms, medicines and first aid. Please describe your symptoms in a few words (for example: fever, headache, cough). For anything serious or persistent, consult a doctor or pharmacist."

// FallbackReply answers message from the local keyword table.
func FallbackReply(message string) string {
	text := strings.ToLower(message)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if hasWordPrefix(text, kw) {
				return rule.reply
			}
		}
	}
	return fallbackDefault
}

func hasWordPrefix(text, kw string) bool {
	for from := 0; from < len(text); {
		i := strings.Index(text[from:], kw)
		if i < 0 {
			return false
		}
		i += from
		if i == 0 {
			return true
		}
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
		from = i + 1
	}
	return false
}
