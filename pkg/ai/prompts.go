package ai

import "fmt"

// Prompt construction is per provider: the native provider gets plain chat
// messages with a system prompt and relies on JSON response mode, while the
// embedded provider runs an instruction-tuned local model that needs the
// gemma chat template spelled out and a stop token on the closing brace.

const nativeSystemPrompt = "You are an expert at topic detection and sentiment analysis. " +
	"Provide accurate, structured responses."

func nativeTopicsPrompt(comment string) string {
	return fmt.Sprintf("You are a helpful relevance classifier.\n"+
		"Classify the comment below into the main subjects discussed.\n"+
		"Respond with a JSON object: {\"topics\": [\"subject1\", \"subject2\"]}.\n"+
		"Each subject must be 3 words or less, up to 5 subjects, in order of prominence.\n"+
		"Comment:\n%q", comment)
}

func nativeSentimentPrompt(comment, topic string) string {
	return fmt.Sprintf("Analyze the sentiment of this comment regarding the topic %q.\n"+
		"Respond with a JSON object: {\"sentiment\": \"positive|negative|neutral|unknown\", "+
		"\"confidence\": 0.0-1.0, \"explanation\": \"brief reasoning\"}.\n"+
		"Comment:\n%q", topic, comment)
}

func nativeSummaryPrompt(text string) string {
	return fmt.Sprintf("Summarize the following conversation concisely and clearly. "+
		"Do not mention usernames. Present only the factual summary, no meta-commentary.\n\n"+
		"Conversation:\n%s", text)
}

func embeddedTopicsPrompt(comment string) string {
	return fmt.Sprintf(`<start_of_turn>user
You are a JSON-only relevance classifier.

Analyze the comment below and identify the main subjects discussed.

Requirements:
- Return ONLY valid JSON in this exact format: {"subjects": ["subject1", "subject2"]}
- Each subject must be 3 words or less
- Include up to 5 subjects maximum
- List subjects in order of prominence/appearance
- Only include subjects explicitly mentioned or clearly alluded to
- Be specific, not vague
- NO explanatory text before or after the JSON

Comment:
%q
<end_of_turn>
<start_of_turn>model
`, comment)
}

func embeddedSentimentPrompt(comment, topic string) string {
	return fmt.Sprintf(`<start_of_turn>user
You are a sentiment analysis model.

Instructions:
- Analyze the sentiment of the given comment regarding the given topic
- Classify as positive, negative, or neutral
- Provide a confidence score between 0.0 and 1.0
- Respond with ONLY valid JSON in this exact format:
{"sentiment": "positive|negative|neutral|unknown", "confidence": 0.0-1.0, "explanation": "why this classification"}

Guidelines:
- Positive: expresses satisfaction, joy, approval, or optimism
- Negative: expresses dissatisfaction, anger, criticism, or pessimism
- Neutral: factual, objective, or mixed sentiment
- Unknown: if sentiment is unclear or cannot be determined

Comment:
%q

Topic: %s

Now analyze the sentiment of this and respond.
<end_of_turn>
<start_of_turn>model
`, comment, topic)
}

func embeddedSummaryPrompt(text string) string {
	return fmt.Sprintf(`<start_of_turn>user
You are a helpful assistant that summarizes conversations concisely and clearly.

Instructions:
- Provide complete summaries without truncation
- Don't mention the usernames specifically
- Keep responses concise but comprehensive
- Avoid unnecessary explanations or meta-commentary
- Present only the factual summary

Now, analyze and summarize the following conversation:

Conversation:
%s
Provide the summary now.
<end_of_turn>
<start_of_turn>model
`, text)
}
