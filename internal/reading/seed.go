package reading

// Seed data loaded into every collection at start-up. The functions return
// fresh slices so callers may keep them.

func SeedNotices() []Notice {
	return []Notice{
		{
			ID:          1,
			Title:       "2026학년도 독서인증제 운영 안내",
			Content:     "2026학년도 독서인증제 세부 운영 기준과 인증 절차를 안내합니다. 첨부 파일을 확인해 주세요.",
			Date:        "2026-01-01",
			Views:       10,
			Author:      "도서관",
			Attachments: []string{"2026_독서인증제_운영지침.pdf"},
			Important:   true,
		},
		{
			ID:          2,
			Title:       "2월 독서 프로그램 참가자 모집",
			Content:     "함께 읽는 고전 100선 2월 모임 참가자를 모집합니다. 선착순 30명.",
			Date:        "2026-02-10",
			Views:       34,
			Author:      "독서교육팀",
			Attachments: []string{},
		},
		{
			ID:          3,
			Title:       "도서관 시스템 점검에 따른 서비스 중단 안내",
			Content:     "12월 20일 02:00부터 06:00까지 도서관 시스템 점검으로 온라인 서비스가 중단됩니다.",
			Date:        "2025-12-15",
			Views:       120,
			Author:      "도서관",
			Attachments: []string{},
			Important:   true,
		},
		{
			ID:          4,
			Title:       "오거서 서평 공모전 결과 발표",
			Content:     "오거서 서평 공모전 수상자를 발표합니다. 참여해 주신 모든 분들께 감사드립니다.",
			Date:        "2026-01-20",
			Views:       8,
			Author:      "독서교육팀",
			Attachments: []string{"오거서_공모전_수상자.xlsx", "시상식_안내.pdf"},
		},
		{
			ID:          5,
			Title:       "고전 100선 추천 도서 목록 갱신",
			Content:     "고전 100선 목록이 일부 갱신되었습니다. Updated list of the 100 classics is now available.",
			Date:        "2025-11-30",
			Views:       56,
			Author:      "도서관",
			Attachments: []string{},
		},
		{
			ID:          6,
			Title:       "신입생 독서 오리엔테이션 안내",
			Content:     "신입생을 위한 도서관 이용 및 독서 프로그램 오리엔테이션을 진행합니다.",
			Date:        "2026-03-02",
			Views:       3,
			Author:      "독서교육팀",
			Attachments: []string{},
		},
	}
}

func SeedReviews() []Review {
	return []Review{
		{
			ID:        1,
			Type:      ReviewTypeProgram,
			User:      Reviewer{Name: "김민지", Avatar: "/images/avatars/1.png", Department: "국어국문학과"},
			Book:      ReviewedBook{Title: "데미안", Author: "헤르만 헤세", Cover: "/images/covers/demian.jpg"},
			Rating:    5,
			Text:      "알을 깨고 나오는 싱클레어의 이야기가 지금의 나에게 가장 필요한 이야기였다.",
			Likes:     24,
			Comments:  5,
			TimeAgo:   "2시간 전",
			Category:  "문학",
			Program:   "함께 읽는 고전 100선",
			ProgramID: intPtr(1),
		},
		{
			ID:       2,
			Type:     ReviewTypeOgeoseo,
			User:     Reviewer{Name: "이준호", Avatar: "/images/avatars/2.png", Department: "경영학과"},
			Book:     ReviewedBook{Title: "사피엔스", Author: "유발 하라리", Cover: "/images/covers/sapiens.jpg"},
			Rating:   4,
			Text:     "인류가 허구를 믿는 능력으로 협력해 왔다는 관점이 신선했다.",
			Likes:    12,
			Comments: 2,
			TimeAgo:  "1일 전",
			Category: "역사",
		},
		{
			ID:        3,
			Type:      ReviewTypeProgram,
			User:      Reviewer{Name: "Emily Park", Avatar: "/images/avatars/3.png", Department: "영어영문학과"},
			Book:      ReviewedBook{Title: "어린 왕자", Author: "생텍쥐페리", Cover: "/images/covers/little-prince.jpg"},
			Rating:    5,
			Text:      "Reading it in the original language made the fox's lesson even more moving.",
			Likes:     9,
			Comments:  1,
			TimeAgo:   "3일 전",
			Category:  "문학",
			Program:   "영어 원서 읽기 모임",
			ProgramID: intPtr(4),
		},
		{
			ID:       4,
			Type:     ReviewTypeOgeoseo,
			User:     Reviewer{Name: "박서연", Avatar: "/images/avatars/4.png", Department: "컴퓨터공학과"},
			Book:     ReviewedBook{Title: "코스모스", Author: "칼 세이건", Cover: "/images/covers/cosmos.jpg"},
			Rating:   5,
			Text:     "창백한 푸른 점을 처음 알게 된 순간의 감동을 잊을 수 없다.",
			Likes:    31,
			Comments: 7,
			TimeAgo:  "5일 전",
			Category: "과학",
		},
		{
			ID:        5,
			Type:      ReviewTypeProgram,
			User:      Reviewer{Name: "최우진", Avatar: "/images/avatars/5.png", Department: "철학과"},
			Book:      ReviewedBook{Title: "정의란 무엇인가", Author: "마이클 샌델", Cover: "/images/covers/justice.jpg"},
			Rating:    4,
			Text:      "토론 모임에서 트롤리 문제를 두고 의견이 갈린 것이 가장 기억에 남는다.",
			Likes:     6,
			Comments:  3,
			TimeAgo:   "1주 전",
			Category:  "철학",
			Program:   "함께 읽는 고전 100선",
			ProgramID: intPtr(1),
		},
		{
			ID:       6,
			Type:     ReviewTypeOgeoseo,
			User:     Reviewer{Name: "정하은", Avatar: "/images/avatars/6.png"},
			Book:     ReviewedBook{Title: "이기적 유전자", Author: "리처드 도킨스", Cover: "/images/covers/selfish-gene.jpg"},
			Rating:   3,
			Text:     "밈이라는 개념의 출발점을 알 수 있었지만 후반부는 조금 어려웠다.",
			Likes:    4,
			Comments: 0,
			TimeAgo:  "2주 전",
			Category: "과학",
		},
	}
}

func SeedClassics() []Classic {
	return []Classic{
		{ID: 1, Title: "데미안", Author: "헤르만 헤세", Publisher: "민음사", Year: 1919, Category: "문학",
			Description: "새는 알에서 나오려고 투쟁한다. 싱클레어의 내면 성장을 그린 성장소설.",
			Cover:       "/images/covers/demian.jpg", ISBN: "9788937460449"},
		{ID: 2, Title: "수레바퀴 아래서", Author: "헤르만 헤세", Publisher: "민음사", Year: 1906, Category: "문학",
			Description: "『데미안』과 함께 헤세의 자전적 성장소설을 대표하는 작품.",
			Cover:       "/images/covers/unterm-rad.jpg"},
		{ID: 3, Title: "어린 왕자", Author: "생텍쥐페리", Publisher: "열린책들", Year: 1943, Category: "문학",
			Description: "가장 중요한 것은 눈에 보이지 않는다. 어른을 위한 동화.",
			Cover:       "/images/covers/little-prince.jpg"},
		{ID: 4, Title: "1984", Author: "조지 오웰", Publisher: "민음사", Year: 1949, Category: "문학",
			Description: "빅 브라더가 지배하는 전체주의 사회를 그린 디스토피아 소설.",
			Cover:       "/images/covers/1984.jpg", ISBN: "9788937460777"},
		{ID: 5, Title: "동물농장", Author: "조지 오웰", Publisher: "민음사", Year: 1945, Category: "문학",
			Description: "혁명이 어떻게 변질되는지 보여주는 정치 우화.",
			Cover:       "/images/covers/animal-farm.jpg"},
		{ID: 6, Title: "차라투스트라는 이렇게 말했다", Author: "프리드리히 니체", Publisher: "민음사", Year: 1883, Category: "철학",
			Description: "초인과 영원회귀 사상을 담은 니체의 대표작.",
			Cover:       "/images/covers/zarathustra.jpg"},
		{ID: 7, Title: "정의란 무엇인가", Author: "마이클 샌델", Publisher: "와이즈베리", Year: 2009, Category: "철학",
			Description: "공리주의, 자유주의, 공동체주의의 관점에서 정의를 묻는다.",
			Cover:       "/images/covers/justice.jpg"},
		{ID: 8, Title: "사피엔스", Author: "유발 하라리", Publisher: "김영사", Year: 2011, Category: "역사",
			Description: "인지혁명부터 과학혁명까지 인류의 역사를 조망한다.",
			Cover:       "/images/covers/sapiens.jpg"},
		{ID: 9, Title: "총, 균, 쇠", Author: "재레드 다이아몬드", Publisher: "문학사상", Year: 1997, Category: "역사",
			Description: "문명 간 불평등의 기원을 환경과 지리에서 찾는다.",
			Cover:       "/images/covers/guns-germs-steel.jpg"},
		{ID: 10, Title: "코스모스", Author: "칼 세이건", Publisher: "사이언스북스", Year: 1980, Category: "과학",
			Description: "우주와 인간의 관계를 탐구하는 과학 교양서의 고전.",
			Cover:       "/images/covers/cosmos.jpg"},
		{ID: 11, Title: "이기적 유전자", Author: "리처드 도킨스", Publisher: "을유문화사", Year: 1976, Category: "과학",
			Description: "유전자의 관점에서 진화와 생명을 다시 본다.",
			Cover:       "/images/covers/selfish-gene.jpg"},
		{ID: 12, Title: "침묵의 봄", Author: "레이첼 카슨", Publisher: "에코리브르", Year: 1962, Category: "과학",
			Description: "살충제 남용이 생태계에 미치는 영향을 고발한 환경운동의 출발점.",
			Cover:       "/images/covers/silent-spring.jpg"},
	}
}

func SeedPrograms() []Program {
	return []Program{
		{
			ID:           1,
			Title:        "함께 읽는 고전 100선",
			Description:  "매주 한 권의 고전을 읽고 토론하는 정기 독서 모임입니다.",
			Category:     "독서토론",
			Host:         "독서교육팀",
			Location:     "중앙도서관 세미나실 1",
			StartDate:    "2026-03-04",
			EndDate:      "2026-06-17",
			Capacity:     30,
			Participants: 12,
			Status:       ProgramStatusRecruiting,
			Cover:        "/images/programs/classics.jpg",
		},
		{
			ID:           2,
			Title:        "오거서 챌린지",
			Description:  "한 학기 동안 다섯 수레의 책을 읽고 서평을 남기는 챌린지.",
			Category:     "독서챌린지",
			Host:         "도서관",
			Location:     "온라인",
			StartDate:    "2026-02-01",
			EndDate:      "2026-07-31",
			Capacity:     100,
			Participants: 45,
			Status:       ProgramStatusOngoing,
			Cover:        "/images/programs/ogeoseo.jpg",
		},
		{
			ID:           3,
			Title:        "작가와의 만남",
			Description:  "소설가를 초청해 창작 과정과 독서 경험을 듣는 특강.",
			Category:     "특강",
			Host:         "도서관",
			Location:     "대강당",
			StartDate:    "2025-11-12",
			EndDate:      "2025-11-12",
			Capacity:     80,
			Participants: 80,
			Status:       ProgramStatusClosed,
			Cover:        "/images/programs/author-talk.jpg",
		},
		{
			ID:           4,
			Title:        "영어 원서 읽기 모임",
			Description:  "English Book Club: 영어 원서를 함께 읽고 영어로 이야기합니다.",
			Category:     "독서토론",
			Host:         "국제교류팀",
			Location:     "중앙도서관 세미나실 2",
			StartDate:    "2026-03-10",
			EndDate:      "2026-05-26",
			Capacity:     15,
			Participants: 5,
			Status:       ProgramStatusRecruiting,
			Cover:        "/images/programs/book-club.jpg",
		},
	}
}

func intPtr(v int) *int {
	return &v
}
