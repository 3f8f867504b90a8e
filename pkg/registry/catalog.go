package registry

// Category labels used by the built-in catalog.
const (
	CategoryChatKnowledge  = "Chat & Knowledge"
	CategoryCreativeMedia  = "Creative Media"
	CategoryVideo          = "Video"
	CategoryAudioMusic     = "Audio & Music"
	CategoryCodeSoftware   = "Code & Software"
	CategoryBusiness       = "Business & Marketing"
	CategoryEducation      = "Education & Learning"
	CategoryHealth         = "Health & Lifestyle"
	CategoryAstrology      = "Astrology & Spiritual"
	CategoryUtility        = "Utility & Daily Life"
)

func seed(id, name, description, category string, handler Handler) Tool {
	return Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Implemented: true,
		Enabled:     true,
		Handler:     handler,
	}
}

// DefaultCatalog returns the built-in tool table. Every entry ships enabled
// and implemented; tools added at runtime through the admin channel are
// placeholders instead.
func DefaultCatalog() []Tool {
	text := Implemented(HandlerText)
	chat := Implemented(HandlerChat)
	image := Implemented(HandlerImage)
	video := Implemented(HandlerVideo)
	speech := Implemented(HandlerSpeech)
	transcribe := Implemented(HandlerTranscribe)

	return []Tool{
		// Chat & Knowledge
		seed("chat", "Indomind Chat", "Engage in intelligent conversations with our core AI.", CategoryChatKnowledge, chat),
		seed("auto_researcher", "Auto Researcher AI", "Automated research on any topic.", CategoryChatKnowledge, text),
		seed("web_data_search", "Real-Time Web Data Search", "Search the web in real-time for up-to-date info.", CategoryChatKnowledge, text),
		seed("summarizer", "Knowledge Summarizer", "Condense long texts into concise summaries.", CategoryChatKnowledge, text),
		seed("document_reader", "Document Reader AI", "Extract and understand info from documents.", CategoryChatKnowledge, text),
		seed("memory_recall", "Memory Recall AI", "Stores and recalls information from your past conversations.", CategoryChatKnowledge, text),
		seed("fact_checker", "AI Fact Checker", "Verify information and check facts with AI assistance.", CategoryChatKnowledge, text),
		seed("debate_generator", "AI Debate Generator", "Generate arguments for both sides of a topic.", CategoryChatKnowledge, text),
		seed("emotion_simulator", "Human Emotion Chat Simulator", "Practice conversations with an AI that simulates emotions.", CategoryChatKnowledge, text),
		seed("brainstorm_partner", "Brainstorm Partner AI", "Generate and expand upon creative ideas.", CategoryChatKnowledge, text),

		// Creative Media
		seed("image_generator", "Image Generator", "Create stunning visuals from text descriptions.", CategoryCreativeMedia, image),
		seed("3d_model_generator", "3D Model Generator", "Generate 3D model concepts and specs from text.", CategoryCreativeMedia, text),
		seed("art_style_converter", "Art Style Converter", "Transform images into different artistic styles.", CategoryCreativeMedia, image),
		seed("cartoonizer", "Cartoonizer", "Turn your photos into cartoon-style images.", CategoryCreativeMedia, image),
		seed("image_restorer", "Image Restorer", "Restore and enhance old or damaged photos.", CategoryCreativeMedia, image),
		seed("sketch_to_photo", "Sketch to Photo AI", "Convert simple sketches into realistic photos.", CategoryCreativeMedia, image),
		seed("digital_painting", "Digital Painting Generator", "Create beautiful digital paintings from a prompt.", CategoryCreativeMedia, image),
		seed("poster_banner_maker", "Poster & Banner Maker", "Design marketing materials with AI.", CategoryCreativeMedia, image),
		seed("logo_generator", "Logo Generator", "Generate unique and professional logos for your brand.", CategoryCreativeMedia, image),
		seed("fashion_design", "Fashion Design AI", "Create new and unique fashion design concepts.", CategoryCreativeMedia, image),

		// Video
		seed("video_generator", "AI Video Generator", "Create stunning videos from text prompts.", CategoryVideo, video),
		seed("music_video_creator", "Music Video Creator", "Generate a music video concept for a song.", CategoryVideo, video),
		seed("lip_sync_maker", "Lip-Sync Video Maker", "Animate a character to lip-sync to audio.", CategoryVideo, video),
		seed("animated_story", "Animated Story Generator", "Create short animated stories from a script.", CategoryVideo, video),
		seed("ad_commercial", "Ad Commercial Creator", "Generate a script and storyboard for a commercial.", CategoryVideo, text),
		seed("short_film_generator", "Short Film Generator", "Develop a concept and script for a short film.", CategoryVideo, text),
		seed("talking_avatar", "Talking Avatar Creator", "Create an animated avatar that speaks your text.", CategoryVideo, video),
		seed("reels_creator", "Reels Creator", "Generate ideas and scripts for social media reels.", CategoryVideo, text),
		seed("cinematic_scene", "Cinematic Scene Composer", "Describe a scene and get a cinematic shot list.", CategoryVideo, text),
		seed("video_bg_changer", "Background Changer for Videos", "Plan a video with a different background.", CategoryVideo, video),

		// Audio & Music
		seed("song_generator", "Song Generator", "Compose original music and songs.", CategoryAudioMusic, text),
		seed("voice_cloner", "Voice Cloner", "Synthesize speech in various vocal styles.", CategoryAudioMusic, speech),
		seed("text_to_speech", "Text-to-Speech", "Convert text into natural-sounding speech.", CategoryAudioMusic, speech),
		seed("podcast_maker", "AI Podcast Maker", "Generate a script for a podcast episode on any topic.", CategoryAudioMusic, text),
		seed("sound_fx", "Sound FX Generator", "Generate sound effect descriptions for your projects.", CategoryAudioMusic, text),
		seed("audio_mastering", "AI Audio Mastering", "Get suggestions for mastering your audio tracks.", CategoryAudioMusic, text),
		seed("beat_composer", "Beat Composer", "Generate beat patterns and drum loops ideas.", CategoryAudioMusic, text),
		seed("instrumental_generator", "Instrumental Generator", "Create concepts for instrumental background music.", CategoryAudioMusic, text),
		seed("voice_translator", "Voice Translator", "Translate spoken words from one language to another.", CategoryAudioMusic, speech),
		seed("emotion_voice_synthesizer", "Emotion Voice Synthesizer", "Generate speech with specific emotional tones.", CategoryAudioMusic, speech),

		// Code & Software
		seed("app_builder", "App Builder", "Generate full applications from a description.", CategoryCodeSoftware, text),
		seed("website_generator", "Website Generator", "Generate website code from a description.", CategoryCodeSoftware, text),
		seed("game_builder", "Game Builder AI", "Generate concepts and scripts for a new game.", CategoryCodeSoftware, text),
		seed("bug_fixer", "Bug Fixer AI", "Automatically detect and fix bugs in your code.", CategoryCodeSoftware, text),
		seed("code_optimizer", "Code Optimizer", "Refactor and improve your code for efficiency.", CategoryCodeSoftware, text),
		seed("ui_designer", "UI Designer AI", "Generate UI/UX concepts and component ideas.", CategoryCodeSoftware, text),
		seed("db_designer", "Database Designer AI", "Generate a database schema from requirements.", CategoryCodeSoftware, text),
		seed("cybersecurity_assistant", "Cybersecurity Assistant", "Identify potential security vulnerabilities in code.", CategoryCodeSoftware, text),
		seed("devops_pipeline", "Auto DevOps Pipeline Generator", "Generate a CI/CD pipeline configuration.", CategoryCodeSoftware, text),
		seed("api_builder", "API Builder", "Design and get code snippets for RESTful APIs.", CategoryCodeSoftware, text),

		// Business & Marketing
		seed("startup_idea", "Startup Idea Generator", "Get innovative startup ideas based on trends.", CategoryBusiness, text),
		seed("business_plan", "Business Plan AI", "Generate a complete business plan.", CategoryBusiness, text),
		seed("ad_copy_creator", "Ad Copy Creator", "Write compelling copy for your advertisements.", CategoryBusiness, text),
		seed("brand_name_generator", "Brand Name Generator", "Generate unique and catchy brand names.", CategoryBusiness, text),
		seed("seo_optimizer", "SEO Optimizer", "Optimize your content for search engines.", CategoryBusiness, text),
		seed("market_research", "Market Research Analyzer", "Analyze market trends and competitor data.", CategoryBusiness, text),
		seed("product_description", "Product Description Writer", "Write engaging product descriptions.", CategoryBusiness, text),
		seed("resume_builder", "Auto Resume/CV Builder", "Create a professional resume from your details.", CategoryBusiness, text),
		seed("email_writer", "Email Writer AI", "Compose professional and effective emails.", CategoryBusiness, text),
		seed("customer_support_bot", "Customer Support Bot", "Simulate a customer support conversation.", CategoryBusiness, chat),

		// Education & Learning
		seed("student_tutor", "Student Tutor AI", "Personalized tutoring for any subject.", CategoryEducation, text),
		seed("quiz_generator", "Quiz Generator", "Create quizzes and tests on any topic.", CategoryEducation, text),
		seed("exam_maker", "Exam Maker", "Generate exam questions for various subjects.", CategoryEducation, text),
		seed("textbook_summarizer", "Textbook Summarizer", "Summarize chapters from a textbook.", CategoryEducation, text),
		seed("concept_visualizer", "Concept Visualizer", "Explain complex concepts in a simple, visual way.", CategoryEducation, text),
		seed("language_learning_bot", "Language Learning Bot", "Practice speaking and translating with an AI.", CategoryEducation, text),
		seed("math_solver", "Math Problem Solver", "Solve complex mathematical problems.", CategoryEducation, text),
		seed("code_learning_mentor", "Code Learning Mentor", "Get explanations and help with coding problems.", CategoryEducation, text),
		seed("science_simulation", "Science Simulation Generator", "Describe and simulate scientific experiments.", CategoryEducation, text),
		seed("history_story_builder", "History Story Builder", "Create engaging stories from historical events.", CategoryEducation, text),

		// Health & Lifestyle
		seed("fitness_planner", "Fitness Planner AI", "Create personalized fitness and workout plans.", CategoryHealth, text),
		seed("diet_planner", "Diet Planner", "Generate custom diet plans for your goals.", CategoryHealth, text),
		seed("sleep_analyzer", "Sleep Pattern Analyzer", "Get insights into improving your sleep quality.", CategoryHealth, text),
		seed("stress_detector", "Stress Detector", "Analyze text to detect potential stress levels.", CategoryHealth, text),
		seed("meditation_assistant", "Meditation Assistant", "Generate guided meditation scripts.", CategoryHealth, text),
		seed("voice_emotion_analyzer", "Voice Emotion Analyzer", "Analyze emotional tone from text.", CategoryHealth, text),
		seed("health_report_generator", "Health Report Generator", "Summarize health data into a readable report.", CategoryHealth, text),
		seed("symptom_checker", "Symptom Checker", "Get information based on described symptoms.", CategoryHealth, text),
		seed("skin_care_advisor", "Skin Care Advisor", "Get personalized skin care routine advice.", CategoryHealth, text),
		seed("herbal_advisor", "Herbal & Ayurveda Advisor", "Get information on herbal and Ayurvedic remedies.", CategoryHealth, text),

		// Astrology & Spiritual
		seed("horoscope_generator", "Horoscope Generator", "Get daily, weekly, and monthly horoscopes.", CategoryAstrology, text),
		seed("birth_chart_reader", "Birth Chart Reader", "Generate a basic interpretation of a birth chart.", CategoryAstrology, text),
		seed("numerology_analyzer", "Numerology Analyzer", "Analyze names and dates for numerological insights.", CategoryAstrology, text),
		seed("dream_interpreter", "Dream Interpreter", "Analyze and interpret your dreams.", CategoryAstrology, text),
		seed("palmistry_scanner", "Palmistry Scanner", "Get a fun, AI-generated palm reading from a description.", CategoryAstrology, text),
		seed("chakra_balancer", "Chakra Balancer", "Generate guided meditations for chakra balancing.", CategoryAstrology, text),
		seed("lucky_color_finder", "Lucky Color Finder", "Find your lucky color for the day based on astrology.", CategoryAstrology, text),
		seed("compatibility_calculator", "Compatibility Calculator", "Calculate compatibility based on zodiac signs.", CategoryAstrology, text),
		seed("mantra_recommender", "Mantra Recommender", "Get mantra recommendations for your goals.", CategoryAstrology, text),
		seed("fortune_prediction", "Fortune Prediction AI", "Get a fun, AI-generated fortune for the day.", CategoryAstrology, text),

		// Utility & Daily Life
		seed("currency_converter", "Currency Converter AI", "Get information on currency conversions.", CategoryUtility, text),
		seed("weather_forecaster", "AI Weather Forecaster", "Get a descriptive weather forecast.", CategoryUtility, text),
		seed("news_summarizer", "AI News Summarizer", "Get summaries of the latest news.", CategoryUtility, text),
		seed("email_classifier", "Email Classifier", "Classify emails into categories like important, spam, etc.", CategoryUtility, text),
		seed("file_translator", "AI File Translator", "Translate text content between languages.", CategoryUtility, text),
		seed("handwriting_to_text", "Handwriting to Text AI", "Convert descriptions of handwriting to text.", CategoryUtility, transcribe),
		seed("text_to_handwriting", "Text to Handwriting Generator", "Generate images of text in a handwriting style.", CategoryUtility, image),
		seed("speech_to_text", "Speech to Text AI", "Transcribe audio into text with high accuracy.", CategoryUtility, transcribe),
		seed("ocr_scanner", "OCR Scanner", "Extract text from an image description.", CategoryUtility, transcribe),
		seed("smart_reminder", "Smart Reminder Assistant", "Set intelligent, context-aware reminders.", CategoryUtility, text),
		seed("schedule_planner", "Auto Schedule Planner", "Generate a daily or weekly schedule based on tasks.", CategoryUtility, text),
		seed("world_info_generator", "Real-Time World Info Generator", "Get real-time information on any topic.", CategoryUtility, text),
	}
}
