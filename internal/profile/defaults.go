// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import "github.com/pdiddy/req-extract/pkg/types"

// DefaultLanguage is the language used when detection is inconclusive.
const DefaultLanguage = "en"

// builtinOrder fixes the iteration order over the built-in languages.
var builtinOrder = []string{"en", "fr", "de", "es", "it"}

// Defaults returns fresh copies of the built-in language profiles keyed by
// code. Common-word lists are disjoint across languages so that the
// identifier's word signal discriminates cleanly.
func Defaults() map[string]types.LanguageProfile {
	return map[string]types.LanguageProfile{
		"en": english(),
		"fr": french(),
		"de": german(),
		"es": spanish(),
		"it": italian(),
	}
}

func english() types.LanguageProfile {
	return types.LanguageProfile{
		Code:         "en",
		Name:         "English",
		SpecialChars: nil,
		CommonWords: []string{
			"the", "and", "of", "to", "is", "that", "for", "it", "with", "as",
			"be", "on", "are", "by", "this", "all", "from", "or", "at", "an",
			"which", "not", "have", "has", "its", "their", "they", "was", "were", "been",
			"any", "each", "when", "than", "into", "able", "times", "also", "such", "these",
		},
		Trigrams: []string{
			"the", "he ", " th", "and", " an", "nd ", "ing", "ion", "tio", " of",
			"of ", "ent", "hat", "tha", " to", "to ", "ed ", "er ", "ll ", "all",
			" be", "be ", "ity", "ure", "ver", "ys ", "sys", "yst", "ste", "tem",
		},
		RequirementKeywords: []string{
			"shall", "must", "should", "required", "requires", "ensure",
			"mandatory", "need", "needs", "will",
		},
		ModalVerbs: []string{"shall", "must", "should", "will", "may", "can", "could", "would"},
		Priorities: types.PriorityTiers{
			High:   []string{"shall", "must", "required", "mandatory", "critical", "essential"},
			Medium: []string{"should", "will", "recommended", "expected", "important"},
			Low:    []string{"may", "could", "can", "optional", "desirable"},
		},
		SecurityKeywords: []string{
			"security", "secure", "authentication", "authorization", "encryption",
			"encrypted", "password", "access control", "confidentiality", "vulnerability",
			"cryptographic", "privacy",
		},
		Categories: map[types.Category][]string{
			types.CategorySafety:        {"safety", "safe", "hazard", "harm", "injury", "emergency", "fail-safe", "risk"},
			types.CategorySecurity:      {"security", "secure", "authentication", "authorization", "encryption", "password", "access", "attack", "vulnerability"},
			types.CategoryPerformance:   {"performance", "latency", "throughput", "response time", "seconds", "milliseconds", "fast", "load", "scalability"},
			types.CategoryFunctional:    {"function", "feature", "process", "provide", "perform", "support", "operation"},
			types.CategoryInterface:     {"interface", "api", "user interface", "display", "screen", "protocol", "port", "connector"},
			types.CategoryData:          {"data", "database", "record", "store", "storage", "backup", "format", "retention"},
			types.CategoryCompliance:    {"comply", "compliance", "regulation", "standard", "iso", "certification", "legal", "conform"},
			types.CategoryDocumentation: {"document", "documentation", "manual", "guide", "specification", "report", "label"},
			types.CategoryTesting:       {"test", "testing", "verify", "verification", "validate", "validation", "inspection"},
		},
		CategoryPatterns: map[types.Category][]string{
			types.CategorySafety:        {`(?i)\b(fail[- ]safe|emergency\s+stop|safe\s+state)\b`},
			types.CategorySecurity:      {`(?i)\b(access\s+control|unauthori[sz]ed\s+access|encrypt(ed|ion)?\s+(at\s+rest|in\s+transit))\b`},
			types.CategoryPerformance:   {`(?i)\bwithin\s+\d+(\.\d+)?\s*(ms|milliseconds?|s|seconds?|minutes?)\b`, `(?i)\b\d+\s*(requests|transactions|messages)\s+per\s+(second|minute)\b`},
			types.CategoryFunctional:    {`(?i)\b(shall|must)\s+(provide|allow|support|enable)\b`},
			types.CategoryInterface:     {`(?i)\b(user\s+interface|graphical\s+interface|rest(ful)?\s+(api|endpoint))\b`},
			types.CategoryData:          {`(?i)\b(stored\s+(in|for)|backed\s+up|retained\s+for)\b`},
			types.CategoryCompliance:    {`(?i)\b(compl(y|iant|iance)\s+with|in\s+accordance\s+with)\b`, `(?i)\b(iso|iec)\s*\d{3,5}\b`},
			types.CategoryDocumentation: {`(?i)\b(user\s+manual|be\s+documented|documented\s+in)\b`},
			types.CategoryTesting:       {`(?i)\bbe\s+(tested|verified|validated)\b`, `(?i)\b(test\s+cases?|acceptance\s+tests?)\b`},
		},
		RequirementPatterns: []string{
			`(?i)\b(shall|must|should|will)\s+(not\s+)?(be\s+)?[a-z]+`,
			`(?i)\b(the\s+)?(system|software|device|user|operator|application|product)\s+(shall|must|should|will)\b`,
			`(?i)\b(be\s+)?(capable\s+of|able\s+to)\b`,
			`(?i)\b(comply|conform|adhere)\s+(with|to)\b`,
			`(?i)\b(is|are)\s+(required|necessary|mandatory)\b`,
		},
		CompliancePhrases: []string{"comply with", "in accordance with", "conform to", "compliant with", "adhere to"},
		CapabilityPhrases: []string{"capable of", "able to", "allow the user to", "provide the ability"},
		Abbreviations: []string{
			"e.g.", "i.e.", "etc.", "vs.", "fig.", "no.", "approx.", "min.", "max.",
			"dr.", "mr.", "mrs.", "ms.", "sec.", "ref.", "rev.", "vol.",
		},
		SegmentationModel: "rules/en",
	}
}

func french() types.LanguageProfile {
	return types.LanguageProfile{
		Code:         "fr",
		Name:         "Français",
		SpecialChars: []string{"é", "è", "ê", "ë", "à", "â", "ç", "ù", "û", "î", "ï", "ô", "œ"},
		CommonWords: []string{
			"le", "les", "des", "du", "et", "est", "pour", "dans", "une", "sur",
			"pas", "qui", "que", "au", "aux", "ce", "cette", "sont", "avec", "ne",
			"être", "par", "ou", "plus", "leur", "toutes", "tous", "tout", "notre", "ses",
			"elle", "nous", "vous", "ces", "été", "fait", "aussi", "sans", "mais", "lors",
		},
		Trigrams: []string{
			" le", "le ", "les", "es ", " de", "de ", "ent", "ion", "tio", "des",
			"que", "ue ", " qu", "nt ", "ons", "eme", "men", "ait", "our", "pou",
			" pa", "par", "ur ", "est", "st ", "con", "té ", "ité", "ème", "oit",
		},
		RequirementKeywords: []string{
			"doit", "doivent", "devra", "devront", "exigence", "exigences",
			"obligatoire", "nécessaire", "garantir", "faut",
		},
		ModalVerbs: []string{"doit", "doivent", "devra", "devront", "peut", "peuvent", "pourra", "devrait", "devraient"},
		Priorities: types.PriorityTiers{
			High:   []string{"doit", "doivent", "devra", "devront", "obligatoire", "exigé", "impératif", "critique"},
			Medium: []string{"devrait", "devraient", "recommandé", "important", "souhaité"},
			Low:    []string{"peut", "peuvent", "pourra", "optionnel", "facultatif"},
		},
		SecurityKeywords: []string{
			"sécurité", "sécurisé", "authentification", "autorisation", "chiffrement",
			"chiffré", "mot de passe", "contrôle d'accès", "confidentialité", "vulnérabilité",
		},
		Categories: map[types.Category][]string{
			types.CategorySafety:        {"sûreté", "danger", "blessure", "urgence", "risque", "protection des personnes"},
			types.CategorySecurity:      {"sécurité", "authentification", "autorisation", "chiffrement", "mot de passe", "accès", "attaque"},
			types.CategoryPerformance:   {"performance", "performances", "latence", "débit", "temps de réponse", "secondes", "rapide", "charge"},
			types.CategoryFunctional:    {"fonction", "fonctionnalité", "processus", "fournir", "effectuer", "prendre en charge"},
			types.CategoryInterface:     {"interface", "api", "affichage", "écran", "protocole", "connecteur"},
			types.CategoryData:          {"données", "base de données", "enregistrement", "stockage", "sauvegarde", "format", "conservation"},
			types.CategoryCompliance:    {"conformité", "conforme", "réglementation", "norme", "iso", "certification", "légal"},
			types.CategoryDocumentation: {"document", "documentation", "manuel", "guide", "spécification", "rapport"},
			types.CategoryTesting:       {"test", "tests", "vérifier", "vérification", "valider", "validation", "essai"},
		},
		CategoryPatterns: map[types.Category][]string{
			types.CategorySafety:        {`(?i)(^|\s)(arrêt\s+d'urgence|état\s+sûr|sécurité\s+des\s+personnes)`},
			types.CategorySecurity:      {`(?i)(^|\s)(contrôle\s+d'accès|accès\s+non\s+autorisé|chiffré(e|s|es)?\s+(au\s+repos|en\s+transit))`},
			types.CategoryPerformance:   {`(?i)(^|\s)en\s+moins\s+de\s+\d+(,\d+)?\s*(ms|millisecondes?|s|secondes?|minutes?)\b`, `(?i)\b\d+\s*(requêtes|transactions|messages)\s+par\s+(seconde|minute)\b`},
			types.CategoryFunctional:    {`(?i)(^|\s)(doit|doivent)\s+(fournir|permettre|prendre\s+en\s+charge)\b`},
			types.CategoryInterface:     {`(?i)(^|\s)(interface\s+(utilisateur|graphique)|api\s+rest)\b`},
			types.CategoryData:          {`(?i)(^|\s)(stockée?s?\s+(dans|pendant)|sauvegardée?s?|conservée?s?\s+pendant)`},
			types.CategoryCompliance:    {`(?i)(^|\s)(conformément\s+à|en\s+conformité\s+avec)`, `(?i)\b(iso|iec|nf(\s+en)?)\s*\d{3,5}\b`},
			types.CategoryDocumentation: {`(?i)(^|\s)(manuel\s+(d'utilisation|utilisateur)|être\s+documentée?s?)`},
			types.CategoryTesting:       {`(?i)(^|\s)être\s+(testée?s?|vérifiée?s?|validée?s?)`, `(?i)(^|\s)(cas\s+de\s+test|tests?\s+d'acceptation)`},
		},
		RequirementPatterns: []string{
			`(?i)\b(doit|doivent|devra|devront)\s+(pas\s+)?(être\s+)?\p{L}+`,
			`(?i)\b(le|la|l')\s*(système|logiciel|utilisateur|opérateur|application|produit)\s+(doit|devra|devrait)\b`,
			`(?i)\b(capable\s+de|en\s+mesure\s+de)\b`,
			`(?i)\b(conforme|se\s+conformer)\s+(à|aux)(\P{L}|$)`,
			`(?i)\b(il\s+faut|est\s+(nécessaire|obligatoire|requis))\b`,
		},
		CompliancePhrases: []string{"conformément à", "conforme à", "en conformité avec", "respecter la norme"},
		CapabilityPhrases: []string{"capable de", "en mesure de", "permettre à l'utilisateur de"},
		Abbreviations:     []string{"p.", "ex.", "etc.", "cf.", "env.", "fig.", "n°.", "art.", "mme.", "m."},
		SegmentationModel: "rules/fr",
	}
}

func german() types.LanguageProfile {
	return types.LanguageProfile{
		Code:         "de",
		Name:         "Deutsch",
		SpecialChars: []string{"ä", "ö", "ü", "ß"},
		CommonWords: []string{
			"der", "die", "das", "und", "ist", "nicht", "mit", "den", "von", "zu",
			"ein", "eine", "für", "auf", "dem", "sich", "werden", "wird", "alle", "auch",
			"im", "bei", "oder", "nach", "aus", "einer", "eines", "zur", "zum", "wenn",
			"sind", "kann", "durch", "über", "jederzeit", "dass", "wie", "nur", "sein", "diese",
		},
		Trigrams: []string{
			"der", "er ", "die", "ie ", " di", "ein", "ich", "sch", "und", "nd ",
			"en ", "den", "cht", "ung", "ng ", "gen", "ten", "che", " ei", "nde",
			"ste", "ens", "ür ", "ere", "ber", "mus", "uss", "ss ", "ges", "run",
		},
		RequirementKeywords: []string{
			"muss", "müssen", "soll", "sollen", "sollte", "erforderlich",
			"anforderung", "anforderungen", "gewährleisten", "notwendig",
		},
		ModalVerbs: []string{"muss", "müssen", "soll", "sollen", "sollte", "sollten", "kann", "können", "darf", "dürfen"},
		Priorities: types.PriorityTiers{
			High:   []string{"muss", "müssen", "erforderlich", "verpflichtend", "zwingend", "kritisch"},
			Medium: []string{"soll", "sollen", "sollte", "sollten", "empfohlen", "wichtig"},
			Low:    []string{"kann", "können", "optional", "wünschenswert"},
		},
		SecurityKeywords: []string{
			"sicherheit", "authentifizierung", "autorisierung", "verschlüsselung",
			"verschlüsselt", "passwort", "kennwort", "zugriffskontrolle", "vertraulichkeit", "schwachstelle",
		},
		Categories: map[types.Category][]string{
			types.CategorySafety:        {"betriebssicherheit", "gefahr", "verletzung", "notfall", "risiko", "schutz"},
			types.CategorySecurity:      {"sicherheit", "authentifizierung", "autorisierung", "verschlüsselung", "passwort", "zugriff", "angriff"},
			types.CategoryPerformance:   {"leistung", "latenz", "durchsatz", "antwortzeit", "sekunden", "schnell", "last"},
			types.CategoryFunctional:    {"funktion", "funktionalität", "prozess", "bereitstellen", "durchführen", "unterstützen"},
			types.CategoryInterface:     {"schnittstelle", "api", "anzeige", "bildschirm", "protokoll", "anschluss"},
			types.CategoryData:          {"daten", "datenbank", "datensatz", "speicherung", "sicherung", "format", "aufbewahrung"},
			types.CategoryCompliance:    {"konformität", "konform", "vorschrift", "norm", "iso", "zertifizierung", "gesetzlich"},
			types.CategoryDocumentation: {"dokument", "dokumentation", "handbuch", "anleitung", "spezifikation", "bericht"},
			types.CategoryTesting:       {"test", "prüfung", "prüfen", "verifizieren", "verifikation", "validierung"},
		},
		CategoryPatterns: map[types.Category][]string{
			types.CategorySafety:        {`(?i)(^|\s)(not-?aus|sicherer?\s+zustand|ausfallsicher)`},
			types.CategorySecurity:      {`(?i)(^|\s)(zugriffskontrolle|zugangskontrolle|unbefugte[nr]?\s+zugriff|verschlüsselt\s+(gespeichert|übertragen))`},
			types.CategoryPerformance:   {`(?i)(^|\s)innerhalb\s+(von\s+)?\d+(,\d+)?\s*(ms|millisekunden|s|sekunden|minuten)\b`, `(?i)\b\d+\s*(anfragen|transaktionen|nachrichten)\s+pro\s+(sekunde|minute)\b`},
			types.CategoryFunctional:    {`(?i)(^|\s)(muss|müssen)\s.*\s(bereitstellen|ermöglichen|unterstützen)\b`},
			types.CategoryInterface:     {`(?i)(benutzeroberfläche|grafische\s+oberfläche|rest-?(api|schnittstelle))`},
			types.CategoryData:          {`(?i)(^|\s)(gespeichert|gesichert|aufbewahrt)\s+werden`},
			types.CategoryCompliance:    {`(?i)(^|\s)(gemäß|in\s+übereinstimmung\s+mit|konform\s+(mit|zu))`, `(?i)\b(iso|iec|din(\s+en)?)\s*\d{3,5}\b`},
			types.CategoryDocumentation: {`(?i)(benutzerhandbuch|(^|\s)dokumentiert\s+werden)`},
			types.CategoryTesting:       {`(?i)(^|\s)(getestet|geprüft|verifiziert)\s+werden`, `(?i)(testfälle?|abnahmetests?)`},
		},
		RequirementPatterns: []string{
			`(?i)\b(muss|müssen|soll|sollen|sollte)\s+(nicht\s+)?\p{L}+`,
			`(?i)\b(das|der|die)\s+(system|software|benutzer|bediener|anwendung|produkt)\s+(muss|soll|sollte)\b`,
			`(?i)\b(in\s+der\s+lage|fähig)\b`,
			`(?i)\b(entsprechen|einhalten|konform\s+mit)\b`,
			`(?i)\b(ist|sind)\s+(erforderlich|notwendig|verpflichtend)\b`,
		},
		CompliancePhrases: []string{"gemäß", "in übereinstimmung mit", "konform mit", "entsprechend der norm"},
		CapabilityPhrases: []string{"in der lage", "fähig", "ermöglichen"},
		Abbreviations:     []string{"z.b.", "bzw.", "usw.", "ca.", "vgl.", "nr.", "abb.", "ggf.", "inkl.", "d.h.", "u.a."},
		SegmentationModel: "rules/de",
	}
}

func spanish() types.LanguageProfile {
	return types.LanguageProfile{
		Code:         "es",
		Name:         "Español",
		SpecialChars: []string{"ñ", "á", "í", "ó", "ú", "é", "¿", "¡"},
		CommonWords: []string{
			"el", "los", "las", "del", "y", "es", "por", "para", "su", "al",
			"hay", "como", "más", "pero", "sus", "este", "esta", "todos", "todas", "ser",
			"está", "son", "entre", "cuando", "muy", "sin", "sobre", "también", "hasta", "donde",
			"desde", "nos", "ni", "otros", "ese", "eso", "todo", "estar", "cada", "siempre",
		},
		Trigrams: []string{
			" de", "de ", "os ", " la", "la ", "el ", " el", "ión", "ció", "ent",
			"ado", "es ", "as ", "los", " lo", "que", "ue ", " qu", "nte", "ara",
			" co", "con", "par", "ien", "sis", "tem", "rid", "seg", "eri", "ida",
		},
		RequirementKeywords: []string{
			"debe", "deben", "deberá", "deberán", "requisito", "requisitos",
			"obligatorio", "necesario", "garantizar", "asegurar",
		},
		ModalVerbs: []string{"debe", "deben", "deberá", "deberán", "debería", "deberían", "puede", "pueden", "podrá"},
		Priorities: types.PriorityTiers{
			High:   []string{"debe", "deben", "deberá", "deberán", "obligatorio", "imprescindible", "crítico"},
			Medium: []string{"debería", "deberían", "recomendado", "importante", "conveniente"},
			Low:    []string{"puede", "pueden", "podrá", "opcional", "deseable"},
		},
		SecurityKeywords: []string{
			"seguridad", "seguro", "autenticación", "autorización", "cifrado",
			"contraseña", "control de acceso", "confidencialidad", "vulnerabilidad",
		},
		Categories: map[types.Category][]string{
			types.CategorySafety:        {"peligro", "lesión", "emergencia", "riesgo", "protección personal"},
			types.CategorySecurity:      {"seguridad", "autenticación", "autorización", "cifrado", "contraseña", "acceso", "ataque"},
			types.CategoryPerformance:   {"rendimiento", "latencia", "tiempo de respuesta", "segundos", "rápido", "carga"},
			types.CategoryFunctional:    {"función", "funcionalidad", "proceso", "proporcionar", "realizar", "soportar"},
			types.CategoryInterface:     {"interfaz", "api", "pantalla", "protocolo", "conector"},
			types.CategoryData:          {"datos", "base de datos", "registro", "almacenamiento", "copia de seguridad", "formato"},
			types.CategoryCompliance:    {"cumplimiento", "cumplir", "normativa", "norma", "iso", "certificación", "legal"},
			types.CategoryDocumentation: {"documento", "documentación", "manual", "guía", "especificación", "informe"},
			types.CategoryTesting:       {"prueba", "pruebas", "verificar", "verificación", "validar", "validación"},
		},
		CategoryPatterns: map[types.Category][]string{
			types.CategorySafety:        {`(?i)(^|\s)(parada\s+de\s+emergencia|estado\s+seguro|a\s+prueba\s+de\s+fallos)`},
			types.CategorySecurity:      {`(?i)(^|\s)(control\s+de\s+acceso|acceso\s+no\s+autorizado|cifrad[oa]s?\s+en\s+(reposo|tránsito))`},
			types.CategoryPerformance:   {`(?i)(^|\s)en\s+menos\s+de\s+\d+(,\d+)?\s*(ms|milisegundos?|s|segundos?|minutos?)\b`, `(?i)\b\d+\s*(solicitudes|transacciones|mensajes)\s+por\s+(segundo|minuto)\b`},
			types.CategoryFunctional:    {`(?i)(^|\s)(debe|deben)\s+(proporcionar|permitir|soportar)\b`},
			types.CategoryInterface:     {`(?i)(^|\s)(interfaz\s+(de\s+usuario|gráfica)|api\s+rest)`},
			types.CategoryData:          {`(?i)(^|\s)(almacenad[oa]s?\s+(en|durante)|respaldad[oa]s?|conservad[oa]s?\s+durante)`},
			types.CategoryCompliance:    {`(?i)(^|\s)(de\s+acuerdo\s+con|en\s+cumplimiento\s+de|cumplir\s+con)`, `(?i)\b(iso|iec|une(\s+en)?)\s*\d{3,5}\b`},
			types.CategoryDocumentation: {`(?i)(^|\s)(manual\s+de\s+usuario|ser\s+documentad[oa]s?)`},
			types.CategoryTesting:       {`(?i)(^|\s)ser\s+(probad[oa]s?|verificad[oa]s?|validad[oa]s?)`, `(?i)(^|\s)(casos?\s+de\s+prueba|pruebas?\s+de\s+aceptación)`},
		},
		RequirementPatterns: []string{
			`(?i)\b(debe|deben|deberá|deberán)\s+(no\s+)?(ser\s+)?\p{L}+`,
			`(?i)\b(el|la)\s+(sistema|software|usuario|operador|aplicación|producto)\s+(debe|deberá|debería)(\P{L}|$)`,
			`(?i)\b(capaz\s+de|en\s+condiciones\s+de)\b`,
			`(?i)\b(cumplir\s+con|conforme\s+a)\b`,
			`(?i)\b(es\s+(necesario|obligatorio|requerido)|hay\s+que)\b`,
		},
		CompliancePhrases: []string{"cumplir con", "de acuerdo con", "conforme a", "en cumplimiento de"},
		CapabilityPhrases: []string{"capaz de", "en condiciones de", "permitir al usuario"},
		Abbreviations:     []string{"p.ej.", "etc.", "sr.", "sra.", "dr.", "núm.", "pág.", "aprox.", "fig.", "art."},
		SegmentationModel: "rules/es",
	}
}

func italian() types.LanguageProfile {
	return types.LanguageProfile{
		Code:         "it",
		Name:         "Italiano",
		SpecialChars: []string{"à", "è", "é", "ì", "ò", "ù"},
		CommonWords: []string{
			"il", "della", "dei", "delle", "che", "e", "è", "per", "sono", "nel",
			"alla", "gli", "questo", "questa", "essere", "non", "di", "da", "degli", "nella",
			"anche", "tutti", "tutte", "sempre", "ogni", "come", "più", "sia", "dal", "nei",
			"loro", "ma", "quando", "senza", "tra", "lo", "i", "ai", "agli", "siano",
		},
		Trigrams: []string{
			"che", "he ", " ch", "del", "ell", "lla", "la ", " di", "di ", "ion",
			"zio", "one", "ne ", "to ", "ent", "nte", "ere", "re ", " de", "per",
			" pe", "er ", "ato", "ta ", "ist", "sis", "tem", "ema", "eve", "dev",
		},
		RequirementKeywords: []string{
			"deve", "devono", "dovrà", "dovranno", "requisito", "requisiti",
			"obbligatorio", "necessario", "garantire", "assicurare",
		},
		ModalVerbs: []string{"deve", "devono", "dovrà", "dovranno", "dovrebbe", "dovrebbero", "può", "possono", "potrà"},
		Priorities: types.PriorityTiers{
			High:   []string{"deve", "devono", "dovrà", "dovranno", "obbligatorio", "essenziale", "critico"},
			Medium: []string{"dovrebbe", "dovrebbero", "raccomandato", "importante", "consigliato"},
			Low:    []string{"può", "possono", "potrà", "opzionale", "facoltativo"},
		},
		SecurityKeywords: []string{
			"sicurezza", "sicuro", "autenticazione", "autorizzazione", "crittografia",
			"cifratura", "password", "controllo degli accessi", "riservatezza", "vulnerabilità",
		},
		Categories: map[types.Category][]string{
			types.CategorySafety:        {"pericolo", "lesione", "emergenza", "rischio", "incolumità"},
			types.CategorySecurity:      {"sicurezza", "autenticazione", "autorizzazione", "crittografia", "password", "accesso", "attacco"},
			types.CategoryPerformance:   {"prestazioni", "latenza", "tempo di risposta", "secondi", "veloce", "carico"},
			types.CategoryFunctional:    {"funzione", "funzionalità", "processo", "fornire", "eseguire", "supportare"},
			types.CategoryInterface:     {"interfaccia", "api", "schermo", "protocollo", "connettore"},
			types.CategoryData:          {"dati", "database", "registrazione", "archiviazione", "backup", "formato"},
			types.CategoryCompliance:    {"conformità", "conforme", "normativa", "norma", "iso", "certificazione", "legale"},
			types.CategoryDocumentation: {"documento", "documentazione", "manuale", "guida", "specifica", "rapporto"},
			types.CategoryTesting:       {"test", "prova", "verificare", "verifica", "validare", "validazione", "collaudo"},
		},
		CategoryPatterns: map[types.Category][]string{
			types.CategorySafety:        {`(?i)(^|\s)(arresto\s+di\s+emergenza|stato\s+sicuro|a\s+prova\s+di\s+guasto)`},
			types.CategorySecurity:      {`(?i)(^|\s)(controllo\s+(degli\s+)?accessi|accesso\s+non\s+autorizzato|cifrat[ioae]\s+(a\s+riposo|in\s+transito))`},
			types.CategoryPerformance:   {`(?i)(^|\s)entro\s+\d+(,\d+)?\s*(ms|millisecondi|s|secondi|minuti)\b`, `(?i)\b\d+\s*(richieste|transazioni|messaggi)\s+al(la)?\s+(secondo|minuto)\b`},
			types.CategoryFunctional:    {`(?i)(^|\s)(deve|devono)\s+(fornire|consentire|supportare)\b`},
			types.CategoryInterface:     {`(?i)(^|\s)(interfaccia\s+(utente|grafica)|api\s+rest)\b`},
			types.CategoryData:          {`(?i)(^|\s)(memorizzat[ioae]\s+(in|per)|salvat[ioae]|conservat[ioae]\s+per)\b`},
			types.CategoryCompliance:    {`(?i)(^|\s)(in\s+conformità\s+(con|a)|nel\s+rispetto\s+di)`, `(?i)\b(iso|iec|uni(\s+en)?)\s*\d{3,5}\b`},
			types.CategoryDocumentation: {`(?i)(^|\s)(manuale\s+(utente|d'uso)|essere\s+documentat[oaie])`},
			types.CategoryTesting:       {`(?i)(^|\s)essere\s+(testat[oaie]|verificat[oaie]|validat[oaie])`, `(?i)(^|\s)(casi\s+di\s+test|test\s+di\s+accettazione|collaudo)`},
		},
		RequirementPatterns: []string{
			`(?i)\b(deve|devono|dovrà|dovranno)\s+(non\s+)?(essere\s+)?\p{L}+`,
			`(?i)\b(il|l')\s*(sistema|software|utente|operatore|applicazione|prodotto)\s+(deve|dovrà|dovrebbe)(\P{L}|$)`,
			`(?i)\b(in\s+grado\s+di|capace\s+di)\b`,
			`(?i)\b(conforme\s+a|rispettare)\b`,
			`(?i)(^|\P{L})(è\s+(necessario|obbligatorio|richiesto)|occorre)\b`,
		},
		CompliancePhrases: []string{"in conformità con", "conforme a", "nel rispetto di", "secondo la norma"},
		CapabilityPhrases: []string{"in grado di", "capace di", "consentire all'utente"},
		Abbreviations:     []string{"es.", "ecc.", "sig.", "dott.", "pag.", "fig.", "art.", "n.", "cfr."},
		SegmentationModel: "rules/it",
	}
}
