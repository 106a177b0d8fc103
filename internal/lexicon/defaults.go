package lexicon

// Default returns the built-in lexicon tables. Each call returns a fresh
// value so callers may modify it before compiling.
func Default() Raw {
	return Raw{
		Categories: []RawCategory{
			{
				Name:   "Machine Learning",
				Weight: 1.5,
				Keywords: []string{
					"machine learning", "deep learning", "neural networks",
					"supervised learning", "reinforcement learning", "model training",
					"feature engineering", "hyperparameter tuning",
				},
			},
			{
				Name:   "Frameworks & Tools",
				Weight: 1.2,
				Keywords: []string{
					"TensorFlow", "PyTorch", "scikit-learn", "Keras",
					"Hugging Face", "JAX", "XGBoost", "Spark",
				},
			},
			{
				Name:   "AI Concepts",
				Weight: 1.2,
				Keywords: []string{
					"large language models", "LLM", "transformers",
					"natural language processing", "computer vision", "generative AI",
					"RAG", "embeddings",
				},
			},
			{
				Name:   "Programming",
				Weight: 1.0,
				Keywords: []string{
					"Python", "SQL", "Scala", "Java", "TypeScript", "Rust", "Bash",
				},
			},
			{
				Name:   "Data",
				Weight: 1.0,
				Keywords: []string{
					"data pipelines", "ETL", "data analysis", "statistics",
					"data visualization", "big data", "A/B testing",
				},
			},
			{
				Name:   "Infrastructure & MLOps",
				Weight: 1.0,
				Keywords: []string{
					"Docker", "Kubernetes", "AWS", "GCP", "Azure", "CI/CD",
					"MLflow", "model deployment",
				},
			},
			{
				Name:   "Soft Skills",
				Weight: 0.5,
				Keywords: []string{
					"collaboration", "communication", "stakeholders",
					"cross-functional", "problem-solving", "mentoring",
				},
			},
		},

		RoleKeywords: map[string][]string{
			"Machine Learning Engineer": {
				"model serving", "feature store", "inference optimization",
				"distributed training", "production ML", "model monitoring",
				"ONNX", "TensorRT",
			},
			"Data Scientist": {
				"statistical modeling", "hypothesis testing", "experimentation",
				"pandas", "NumPy", "regression", "causal inference", "Jupyter",
			},
			"AI Researcher": {
				"publications", "NeurIPS", "ICML", "novel architectures",
				"research papers", "peer review", "state-of-the-art", "ablation studies",
			},
			"MLOps Engineer": {
				"Kubeflow", "model registry", "Terraform", "observability",
				"Airflow", "model versioning", "SageMaker", "Vertex AI",
			},
			"Data Engineer": {
				"data warehouse", "dbt", "Kafka", "Airflow", "Snowflake",
				"BigQuery", "data modeling", "streaming",
			},
			"NLP Engineer": {
				"tokenization", "named entity recognition", "text classification",
				"sentiment analysis", "BERT", "spaCy", "fine-tuning", "prompt engineering",
			},
			"Computer Vision Engineer": {
				"OpenCV", "object detection", "image segmentation",
				"convolutional neural networks", "YOLO", "image classification",
				"point clouds", "video analytics",
			},
		},

		ActionVerbs: map[string][]string{
			"achievement": {
				"achieve", "improve", "increase", "reduce", "deliver",
				"exceed", "accelerate", "boost", "streamline", "maximize",
			},
			"technical": {
				"develop", "design", "build", "implement", "deploy",
				"architect", "automate", "optimize", "train", "analyze",
				"integrate", "scale",
			},
			"leadership": {
				"lead", "manage", "mentor", "direct", "spearhead",
				"oversee", "guide", "launch", "establish", "champion",
			},
			"collaboration": {
				"collaborate", "partner", "coordinate", "communicate", "support",
				"facilitate", "consult", "align", "contribute", "present",
			},
		},

		GenericPhrases: []string{
			"i am writing to apply",
			"to whom it may concern",
			"dear sir or madam",
			"i believe i would be a great fit",
			"i am the perfect candidate",
			"team player",
			"hard worker",
			"hard-working",
			"think outside the box",
			"go-getter",
			"self-starter",
			"results-driven",
			"detail-oriented",
			"passionate about technology",
			"fast learner",
		},

		WeakLanguage: []string{
			"i think", "i feel", "i hope", "i guess",
			"maybe", "perhaps", "somewhat", "i believe i could",
		},

		StrongOpenings: []string{
			`(?i)^when i (?:first )?(?:saw|read|discovered|learned|heard)\b`,
			`(?i)^as an? \w+`,
			`(?i)^with (?:over |more than |nearly )?\d+\+? years? of\b`,
			`(?i)^i am (?:excited|thrilled|delighted|eager)\b`,
			`(?i)^i'm (?:excited|thrilled|delighted|eager)\b`,
			`(?i)^(?:over|in) the (?:past|last) \d+ years\b`,
			`(?i)^(?:having|after) (?:spent|led|built|shipped|designed)\b`,
		},

		GenericOpenings: []string{
			`(?i)^i am writing to (?:apply|express)`,
			`(?i)^i would like to apply`,
			`(?i)^please accept`,
			`(?i)^dear (?:sir|madam)`,
			`(?i)^to whom`,
		},

		StrongClosings: []string{
			`(?i)\bi would welcome the opportunity\b`,
			`(?i)\bi am available\b`,
			`(?i)\bplease (?:contact|reach out to|get in touch with) me\b`,
			`(?i)\bi look forward to\b`,
			`(?i)\b(?:happy|glad|eager) to discuss\b`,
			`(?i)\blet'?s (?:talk|connect|schedule)\b`,
		},

		ReaderReferences: []string{
			`(?i)\byour (?:company|team|organisation|organization|mission|product|products)\b`,
		},

		RedFlags: []RawRedFlag{
			{
				Type:     "generic_opening",
				Pattern:  `(?i)\b(?:i am writing to (?:apply|express)|to whom it may concern|dear sir or madam)\b`,
				Message:  "Generic opening line detected. Open with a specific hook instead of a formula.",
				Severity: "medium",
			},
			{
				Type:     "placeholder_text",
				Pattern:  `(?i)\[(?:company(?: name)?|role|position|job title|hiring manager|your name|name)\]`,
				Message:  "Template placeholder text found. Replace every bracketed placeholder before sending.",
				Severity: "high",
			},
			{
				Type:     "desperation",
				Pattern:  `(?i)\b(?:i really need (?:this|a) job|i am desperate|any (?:position|role) (?:will do|is fine))\b`,
				Message:  "The letter reads as desperate. Focus on the value you bring rather than your need for the job.",
				Severity: "high",
			},
			{
				Type:     "negative_language",
				Pattern:  `(?i)\b(?:unfortunately|i lack|i do not have|i don't have|despite my lack|although i have no)\b`,
				Message:  "Negative framing draws attention to gaps. Lead with strengths instead.",
				Severity: "medium",
			},
			{
				Type:     "salary_mention",
				Pattern:  `(?i)\b(?:salary|compensation|pay rate|remuneration)\b`,
				Message:  "Avoid raising salary or compensation in a cover letter.",
				Severity: "medium",
			},
			{
				Type:     "buzzword_titles",
				Pattern:  `(?i)\b(?:rockstar|ninja|guru|world-class)\b`,
				Message:  "Buzzword titles such as \"rockstar\" or \"ninja\" read as filler.",
				Severity: "low",
			},
		},
	}
}
