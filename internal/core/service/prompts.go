package service

import (
	"fmt"
	"strings"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
)

const fence = "```"

// Instruction templates for the extractor and the reviewer. The generation
// capability treats them as opaque text; only the fenced valid/json/alert
// markers are load-bearing for reconciliation.

const eventSystemPrompt = `You are an assistant that turns e-mail conversations into calendar invitations.

Read the conversation and fill the requested JSON schema:
- "emails": participant addresses, taken only from the provided known list, never invented
- "title": title of the event based on the objectives described in the conversation
- "description": short description of the event objective
- "date": date of the event formatted as YYYY-MM-DD
- "start_time": start time formatted as HH:MM
- "duration": duration of the event in minutes
- "whole_day": whether the event lasts the entire day

Never invent information absent from the e-mails. Respond only with the JSON object.`

var eventValidationSystemPrompt = fmt.Sprintf(`You are a calendar event validator. Check if the AI's extracted event information is accurate. Return %[1]svalid%[1]s if correct. If incorrect, provide rectification as JSON between %[1]sjson%[1]s tags. Only include the fields that need correction. Never add explanations outside the tags.`, fence)

const toneSystemPrompt = `You are a careful and ethical assistant specialized in analyzing the tone of email conversations. Your role is to detect any sign of disrespect, insults, threats, racism, anger, or emotional intensity in the messages.

Read the conversation carefully and respond in the SAME LANGUAGE as the email, filling the requested JSON schema. If no issue is detected, set "flagged" to false and leave the other fields empty.

If you detect concerning content, set "flagged" to true, pick one "alert_type" and give a brief factual "detail", without exaggeration. Possible types of alerts:
- Ton agressif ou irrespectueux
- Insultes ou langage degradant
- Menaces (directes ou implicites)
- Contenu raciste, discriminatoire ou haineux
- Client tres en colere / frustration intense
- Harcelement ou pression excessive

List in "emails" only the participants involved, taken from the provided known list. Be factual and avoid overreacting. Focus only on what is explicitly written.`

var toneValidationSystemPrompt = fmt.Sprintf(`You are a second-opinion ethical reviewer. Your role is to verify the tone analysis provided by the AI on an email conversation.

Check if:
- The alert is justified by the actual content (no overreaction)
- No serious issue was missed (no under-reaction)
- The language is neutral, factual, and proportional

Rules:
- If the analysis is correct and balanced, respond with: %[1]svalid%[1]s
- If it's too harsh, too mild, or inaccurate, return the corrected fields as JSON between %[1]sjson%[1]s tags, or the improved analysis between %[1]salert%[1]s tags.
- Always respond in the SAME LANGUAGE as the original analysis.

Focus on real red flags:
- Insults, threats, racism, harassment, excessive anger
- Do not flag firm or direct tone unless it crosses into disrespect.`, fence)

const dailySystemPromptFormat = `Tu es un assistant IA organise et efficace, specialise dans le resume des e-mails du jour.

Analyse les messages recus au cours des dernieres 24h et genere un resume structure au format JSON.

Champ "title" : 5 a 10 mots maximum, resume le theme principal de la journee.
Champ "summary" : 3 a 5 phrases max, clair, neutre, concis. Inclus les decisions prises, les urgences, le contexte cle. Ecrit dans la meme langue que les e-mails.
Champ "date" : format ISO YYYY-MM-DD, c'est la date du resume.
Champ "emails" : liste uniquement des adresses e-mail valides, recuperees depuis From, To, Cc. Ne jamais inventer une adresse. Utilise seulement celles fournies dans : %s
Champ "action_items" : liste de taches concretes a faire, chaque tache est une chaine de texte, verbe a l'imperatif + contexte + echeance si possible.
Champ "topics" : liste de mots-cles ou sujets discutes, court, sans phrase.

Regles strictes :
- Ne jamais inventer d'information absente des e-mails
- Si aucun element n'est trouve, champs vides (liste vide, chaine vide)
- Reponds uniquement avec un objet JSON valide, rien d'autre.`

var dailyValidationSystemPrompt = fmt.Sprintf(`You are a daily email summary validator. Your task is to verify the accuracy and completeness of the AI-generated daily summary against the original email content.

Check the following:
- Are the key events, tasks, and topics correctly reported?
- Are action items complete and correctly assigned?
- Are dates, times, and attendees accurate?
- Is any information hallucinated (e.g. people, meetings, tasks not in the emails)?

Respond in one of two ways:
- If the summary is correct and complete, return exactly: %[1]svalid%[1]s
- If the summary is incorrect or incomplete, return a rectified version as JSON between %[1]sjson%[1]s tags. Only include the fields that need correction.

Never add explanations outside the tags.`, fence)

func dailySystemPrompt(corpus *domain.Corpus) string {
	return fmt.Sprintf(dailySystemPromptFormat, strings.Join(corpus.Participants(), ", "))
}

func extractionUserPrompt(corpusText, knownEmails string) string {
	return fmt.Sprintf("Mail conversation: %s\n\nKnown participant e-mails: %s\n\nAnalysis:", corpusText, knownEmails)
}

func dailyUserPrompt(corpusText string) string {
	return fmt.Sprintf("Voici les e-mails du jour :\n\n%s\n\nResume quotidien au format JSON :", corpusText)
}

func validationUserPrompt(corpusText, answer string) string {
	return fmt.Sprintf("Original emails: %s\n\nAI answer: %s\n\nVerification:", corpusText, answer)
}
