package question

// GeneratorDefaults returns the built-in set shown when question generation fails.
func GeneratorDefaults() []Question {
	return []Question{
		{
			Prompt:        "Hiệp định sơ bộ được ký kết giữa chính phủ Việt Nam và Pháp vào ngày tháng năm nào?",
			CorrectAnswer: "06/3/1946",
			IncorrectAnswers: [IncorrectCount]string{
				"14/9/1946",
				"26/11/1953",
				"21/7/1954",
			},
		},
		{
			Prompt:        "Hội nghị Giơnevơ được triệu tập để giải quyết vấn đề nào?",
			CorrectAnswer: "Triều Tiên và lập lại hòa bình ở Đông Dương",
			IncorrectAnswers: [IncorrectCount]string{
				"Chấm dứt chiến tranh ở Việt Nam",
				"Thống nhất đất nước Việt Nam",
				"Giải quyết xung đột giữa các nước lớn",
			},
		},
	}
}

// QuizDefaults returns the built-in set loaded by the quiz screen.
func QuizDefaults() []Question {
	return []Question{
		{
			Prompt:        "What is the title of the budget document presented to the House of Commons by Finance Minister Chrystia Freeland on March 28, 2023?",
			CorrectAnswer: "2023 Canadian federal budget",
			IncorrectAnswers: [IncorrectCount]string{
				"2023 Canadian Economic Action Plan",
				"2023-2024 Fiscal Year Report",
				"Budget of the Canadian Federal Government 2023",
			},
		},
		{
			Prompt:        "What is the fiscal year covered by the 2023 Canadian federal budget?",
			CorrectAnswer: "April 1, 2023 - March 31, 2024",
			IncorrectAnswers: [IncorrectCount]string{
				"April 1, 2022 - March 31, 2023",
				"January 1, 2023 - December 31, 2023",
				"July 1, 2023 - June 30, 2024",
			},
		},
	}
}
