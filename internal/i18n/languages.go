package i18n

// Language names a supported UI language.
type Language string

const (
	Portuguese Language = "portuguese"
	English    Language = "english"
	German     Language = "german"
	Spanish    Language = "spanish"
	French     Language = "french"
)

// DefaultLanguage is used for unknown country codes.
const DefaultLanguage = English

var countryToLanguage = map[string]Language{
	"BR": Portuguese,
	"PT": Portuguese,
	"US": English,
	"GB": English,
	"CA": English,
	"AU": English,
	"UK": English,
	"DE": German,
	"ES": Spanish,
	"FR": French,
}

// locales maps a language to its go-playground locale.
var locales = map[Language]string{
	Portuguese: "pt",
	English:    "en",
	German:     "de",
	Spanish:    "es",
	French:     "fr",
}

// Label keys.
const (
	KeyChooseLocation  = "choose_location"
	KeyLocationPrompt  = "location_prompt"
	KeyChosenPlace     = "chosen_place"
	KeyFeedbackPrompt  = "feedback_prompt"
	KeyWeatherFeedback = "weather_feedback"
	KeyFeedbackThanks  = "feedback_thanks"
	KeyWeatherUpdate   = "weather_update"
	KeyLocation        = "location"
	KeyCurrentTemp     = "current_temp"
	KeyCondition       = "condition"
	KeyHumidity        = "humidity"
	KeyWindSpeed       = "wind_speed"
	KeyForecast        = "forecast"
	KeyTomorrow        = "tomorrow"
	KeyWeekAhead       = "week_ahead"
	KeyLongTerm        = "long_term"
	KeyClimateTrends   = "climate_trends"
	KeyTrend           = "trend"
	KeyConfidence      = "confidence"
	KeyDatapoints      = "datapoints"
	KeyInvalidInput    = "invalid_input"
	KeySevereAlert     = "severe_alert"
	KeyNoAlerts        = "no_alerts"
)

var dictionaries = map[Language]map[string]string{
	Portuguese: {
		KeyChooseLocation:  "Deseja escolher um local diferente? (1 - Sim / 0 - Não)",
		KeyLocationPrompt:  "Qual local deseja pesquisar?",
		KeyChosenPlace:     "Local escolhido:",
		KeyFeedbackPrompt:  "Gostaria de nos contar como está o tempo na sua região?\n1 - Sim\n0 - Não\n",
		KeyWeatherFeedback: "Como está o tempo agora na sua região?",
		KeyFeedbackThanks:  "Obrigado pelo seu relato!",
		KeyWeatherUpdate:   "=== Atualização do Tempo ===",
		KeyLocation:        "Localização",
		KeyCurrentTemp:     "Temperatura Atual",
		KeyCondition:       "Condição",
		KeyHumidity:        "Umidade",
		KeyWindSpeed:       "Velocidade do Vento",
		KeyForecast:        "=== Previsão ===",
		KeyTomorrow:        "Amanhã",
		KeyWeekAhead:       "Próxima Semana",
		KeyLongTerm:        "Longo Prazo",
		KeyClimateTrends:   "=== Tendências Climáticas ===",
		KeyTrend:           "Tendência",
		KeyConfidence:      "Confiança",
		KeyDatapoints:      "Registros Analisados",
		KeyInvalidInput:    "Entrada inválida",
		KeySevereAlert:     "Alerta de Tempo Severo",
		KeyNoAlerts:        "Nenhum alerta de tempo severo.",
	},
	English: {
		KeyChooseLocation:  "Would you like to choose a different location? (1 - Yes / 0 - No)",
		KeyLocationPrompt:  "What location would you like to look up?",
		KeyChosenPlace:     "Chosen place:",
		KeyFeedbackPrompt:  "Would you tell us how the weather is in your location?\n1 - Yes\n0 - No\n",
		KeyWeatherFeedback: "How is the weather right now in your location?",
		KeyFeedbackThanks:  "Thanks for your report!",
		KeyWeatherUpdate:   "=== Weather Update ===",
		KeyLocation:        "Location",
		KeyCurrentTemp:     "Current Temperature",
		KeyCondition:       "Condition",
		KeyHumidity:        "Humidity",
		KeyWindSpeed:       "Wind Speed",
		KeyForecast:        "=== Forecast ===",
		KeyTomorrow:        "Tomorrow",
		KeyWeekAhead:       "Week Ahead",
		KeyLongTerm:        "Long Term",
		KeyClimateTrends:   "=== Climate Trends ===",
		KeyTrend:           "Trend",
		KeyConfidence:      "Confidence",
		KeyDatapoints:      "Datapoints Analyzed",
		KeyInvalidInput:    "Invalid input",
		KeySevereAlert:     "Severe Weather Alert",
		KeyNoAlerts:        "No severe weather alerts.",
	},
	German: {
		KeyChooseLocation:  "Möchten Sie einen anderen Ort auswählen? (1 - Ja / 0 - Nein)",
		KeyLocationPrompt:  "Welchen Ort möchten Sie nachschlagen?",
		KeyChosenPlace:     "Gewählter Ort:",
		KeyFeedbackPrompt:  "Möchten Sie uns mitteilen, wie das Wetter an Ihrem Standort ist?\n1 - Ja\n0 - Nein\n",
		KeyWeatherFeedback: "Wie ist das Wetter gerade an Ihrem Standort?",
		KeyFeedbackThanks:  "Danke für Ihre Meldung!",
		KeyWeatherUpdate:   "=== Wetteraktualisierung ===",
		KeyLocation:        "Standort",
		KeyCurrentTemp:     "Aktuelle Temperatur",
		KeyCondition:       "Zustand",
		KeyHumidity:        "Luftfeuchtigkeit",
		KeyWindSpeed:       "Windgeschwindigkeit",
		KeyForecast:        "=== Vorhersage ===",
		KeyTomorrow:        "Morgen",
		KeyWeekAhead:       "Nächste Woche",
		KeyLongTerm:        "Langfristig",
		KeyClimateTrends:   "=== Klimatrends ===",
		KeyTrend:           "Trend",
		KeyConfidence:      "Konfidenz",
		KeyDatapoints:      "Analysierte Datenpunkte",
		KeyInvalidInput:    "Ungültige Eingabe",
		KeySevereAlert:     "Unwetterwarnung",
		KeyNoAlerts:        "Keine Unwetterwarnungen.",
	},
	Spanish: {
		KeyChooseLocation:  "¿Le gustaría elegir un lugar diferente? (1 - Sí / 0 - No)",
		KeyLocationPrompt:  "¿Qué lugar le gustaría buscar?",
		KeyChosenPlace:     "Lugar elegido:",
		KeyFeedbackPrompt:  "¿Nos diría cómo está el clima en su ubicación?\n1 - Sí\n0 - No\n",
		KeyWeatherFeedback: "¿Cómo está el clima ahora en su ubicación?",
		KeyFeedbackThanks:  "¡Gracias por su reporte!",
		KeyWeatherUpdate:   "=== Actualización del Tiempo ===",
		KeyLocation:        "Ubicación",
		KeyCurrentTemp:     "Temperatura Actual",
		KeyCondition:       "Condición",
		KeyHumidity:        "Humedad",
		KeyWindSpeed:       "Velocidad del Viento",
		KeyForecast:        "=== Pronóstico ===",
		KeyTomorrow:        "Mañana",
		KeyWeekAhead:       "Próxima Semana",
		KeyLongTerm:        "Largo Plazo",
		KeyClimateTrends:   "=== Tendencias Climáticas ===",
		KeyTrend:           "Tendencia",
		KeyConfidence:      "Confianza",
		KeyDatapoints:      "Registros Analizados",
		KeyInvalidInput:    "Entrada inválida",
		KeySevereAlert:     "Alerta de Tiempo Severo",
		KeyNoAlerts:        "No hay alertas de tiempo severo.",
	},
	French: {
		KeyChooseLocation:  "Souhaitez-vous choisir un autre endroit? (1 - Oui / 0 - Non)",
		KeyLocationPrompt:  "Quel endroit souhaitez-vous rechercher?",
		KeyChosenPlace:     "Lieu choisi:",
		KeyFeedbackPrompt:  "Voulez-vous nous dire comment est la météo à votre emplacement?\n1 - Oui\n0 - Non\n",
		KeyWeatherFeedback: "Quel temps fait-il en ce moment à votre emplacement?",
		KeyFeedbackThanks:  "Merci pour votre signalement!",
		KeyWeatherUpdate:   "=== Mise à jour Météo ===",
		KeyLocation:        "Emplacement",
		KeyCurrentTemp:     "Température Actuelle",
		KeyCondition:       "Condition",
		KeyHumidity:        "Humidité",
		KeyWindSpeed:       "Vitesse du Vent",
		KeyForecast:        "=== Prévisions ===",
		KeyTomorrow:        "Demain",
		KeyWeekAhead:       "Semaine à Venir",
		KeyLongTerm:        "Long Terme",
		KeyClimateTrends:   "=== Tendances Climatiques ===",
		KeyTrend:           "Tendance",
		KeyConfidence:      "Confiance",
		KeyDatapoints:      "Points de Données Analysés",
		KeyInvalidInput:    "Entrée invalide",
		KeySevereAlert:     "Alerte Météo Sévère",
		KeyNoAlerts:        "Aucune alerte météo sévère.",
	},
}
