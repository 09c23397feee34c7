package main

const defaultGameTitle = "Aerospace Ethics Jeopardy"

// defaultBoard returns the built-in question set, available without any
// authored content.
func defaultBoard() *Board {
	return &Board{
		Title:       defaultGameTitle,
		Description: "Ethics and safety culture in aviation maintenance",
		Categories: []string{
			"COST-CUTTING", "ETHICAL THEMES", "REGULATIONS", "AVIATION INDUSTRY", "SAFETY CULTURE",
		},
		Questions: map[int]map[int]*Slot{
			1: {
				100: {
					Answer:   "These seven measures include outsourcing maintenance, leasing aircraft, offering ticket-less travel, using kiosk-based check-in, minimizing inflight meals, transferring functions to call centers, and maximizing employee scheduling efficiency.",
					Question: "What are the 7 typical airline cost-cutting measures?",
				},
				200: {
					Answer:   "Airlines now lease new airplanes for shorter periods, increased aircraft reliability has reduced maintenance needs, computer technology has transformed maintenance into 'remove and replace' rather than repair, and lay-offs have forced maintenance professionals to seek employment outside aviation.",
					Question: "What are the 4 maintenance changes that have occurred to reduce cost?",
				},
				300: {
					Answer:   "This describes mechanics who love the technology and their work but feel undervalued by their company, creating a disconnect between labor and management groups.",
					Question: "What does 'square peg in a round hole' mean in aviation maintenance?",
				},
				400: {
					Answer:   "This collaborative program between management, labor, and regulators detects and resolves systemic problems through self-reports of maintenance errors.",
					Question: "What is the ASAP program?",
				},
				500: {
					Answer:   "Only two universities offered aviation ethics courses at the time of writing, and while students found them interesting, they didn't necessarily teach 'anything new'.",
					Question: "What is the status of ethics education in collegiate aviation programs?",
				},
			},
			2: {
				100: {
					Answer:   "These four themes are: passion for aviation, commitment to safety, role models and defining moments, and square peg in a round hole.",
					Question: "What are the four themes that emerged from interviewing mechanics and inspectors?",
				},
				200: {
					Answer:   "Most people in aviation are passionate about airplanes, fascinated by flight technology, and willing to endure incredible highs and lows professionally and personally.",
					Question: "What characterizes 'passion for aviation' as described in Chapter 3?",
				},
				300: {
					Answer:   "Maintenance personnel are committed to safety because they've incurred personal injury, been proximal to accidents, were influenced by role models, or were mentored early in their careers.",
					Question: "What motivates maintenance personnel's commitment to safety?",
				},
				400: {
					Answer:   "These are important elements of character development, where both positive and negative examples impact impressionable minds.",
					Question: "What are role models and defining moments in professional development?",
				},
				500: {
					Answer:   "Military training emphasizes thoroughness, attention to detail, following procedures exactly, accountability for tools and actions, and systematic approaches to maintenance.",
					Question: "What military work practices might help improve safety in civilian aviation?",
				},
			},
			3: {
				100: {
					Answer:   "This is the process by which individuals learn appropriate behaviors by observing and imitating the actions of others, particularly authority figures.",
					Question: "What is behavior modeling?",
				},
				200: {
					Answer:   "Their function is to create, enforce, and oversee compliance with aviation safety regulations and ensure public safety through inspections and oversight.",
					Question: "What is the function of Federal Regulators?",
				},
				300: {
					Answer:   "They develop, publicize, and uphold high ethical standards; create codes of ethics; provide guidance to membership; and help transition individuals from Level-1 to Level-2 decision-makers.",
					Question: "What are the responsibilities of Professional Organizations in the aviation industry?",
				},
				400: {
					Answer:   "An AMT is responsible for public safety, will exercise good judgment in evaluating risks, and will not degrade their profession by allowing supervisors to persuade them against better judgment.",
					Question: "What are the 3 Code of Ethics published by PAMA?",
				},
				500: {
					Answer:   "Ethical behavior builds trust because it demonstrates reliability, integrity, and consistency in decision-making, essential for professional relationships and public confidence.",
					Question: "Why is the practice of ethical behavior associated with trust?",
				},
			},
			4: {
				100: {
					Answer:   "The post-deregulation aviation industry has been plagued with fare wars, with very few airlines successful in the low-cost business model.",
					Question: "What characterizes the modern aviation industry environment?",
				},
				200: {
					Answer:   "Outsourcing maintenance, leasing aircraft instead of buying, offering ticket-less travel, using kiosk-based check-in, and minimizing costs wherever possible.",
					Question: "What are typical cost-cutting measures airlines use?",
				},
				300: {
					Answer:   "The drive to reduce costs and increased equipment reliability have pushed safety concerns into the design domain, leading toward 'disposable' consumerism.",
					Question: "How have cost-cutting measures affected aviation safety philosophy?",
				},
				400: {
					Answer:   "Historical stigma, classification as 'semi-skilled' laborers, limited collegiate education, and reluctance to take charge due to seeing themselves as 'not the management type'.",
					Question: "What factors prevent mechanics from taking leadership roles?",
				},
				500: {
					Answer:   "Companies focus on survival and getting paperwork signed off rather than whether jobs are done properly, leading to outsourcing and reduced investment in employee development.",
					Question: "What are the current trends affecting aviation maintenance quality?",
				},
			},
			5: {
				100: {
					Answer:   "Safety should always be on the forefront of your mind, and safety ethics should be enforced to the extent that they become part of company culture.",
					Question: "What is the fundamental principle of aviation safety culture?",
				},
				200: {
					Answer:   "Personal injury, proximity to serious accidents, influence of powerful role models, early career mentoring, or genuine love for aviation and recognition of responsibilities.",
					Question: "What experiences lead to strong commitment to safety?",
				},
				300: {
					Answer:   "People working midnights affects safety because fatigue leads to poor decision-making, increased mistakes, and reduced alertness during critical maintenance tasks.",
					Question: "How do work schedules like midnight shifts impact aviation safety?",
				},
				400: {
					Answer:   "It creates a system where mechanics feel pressure to rush work, compromise quality, and focus on paperwork completion rather than thorough maintenance.",
					Question: "How does the current aviation business model affect maintenance ethics?",
				},
				500: {
					Answer:   "A code of ethics provides opportunity for Level-1 decision-makers to move toward Level-2 decision-making, but requires consistent behavior modeling by management for effectiveness.",
					Question: "What is the fundamental purpose and limitation of professional codes of ethics?",
				},
			},
		},
		Final: FinalRound{
			Category: "PROFESSIONAL RESPONSIBILITY",
			Answer:   "This is the ultimate obligation every aviation maintenance professional carries, outweighing schedule pressure, cost targets, and supervisor persuasion.",
			Question: "What is public safety?",
		},
		DateCreated: "2024-01-01T00:00:00Z",
		Version:     boardVersion,
		Type:        boardType,
	}
}
