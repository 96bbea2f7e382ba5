package stubapi

import "github.com/hanstar/webfront/internal/models"

// Статичные данные разделов. Источник — корпоративные таблицы;
// здесь они зашиты в код, чтобы бэкенд работал без внешних сервисов.

func staticMenu() []models.MenuSection {
	return []models.MenuSection{
		{Main: "한스타소개", Sub: []string{"회사소개", "회사연혁"}},
		{Main: "국제운송", Sub: []string{"SCRAP해상운송", "차량및중장비해외배송", "우드펠릿해상운송", "괌주변군도부자재운송"}},
		{Main: "국제무역", Sub: []string{"차량,중장비 및 부품 판매", "CIS지역 차량정비", "CIS지역 냉동기특장", "우드펠릿 국내판매", "폰페이섬 통선운영"}},
		{Main: "CONTACT", Sub: []string{"연락처", "찾아오시는길"}},
		{Main: "문의및답변", Sub: []string{"문의하기", "문의답변", "답변등록"}},
		{Main: "자료배포", Sub: []string{"자료받기", "자료등록"}},
	}
}

func staticCompanyIntro() string {
	return `㈜한스타는 1994년 8월 열정 가득한 젊은이들이 모여'
해상운송 및 국제무역 시장을 선도하는 기업'
'혁신과 자유경쟁을 통한 복합 해양 서비스' 라는
목표로 창립하였습니다.
창립 후 20년이 넘는 기간 동안 꾸준히
극동아시아 및 칠레, 베네수엘라 등 남미 지역으로의
해운 및 무역에 대한 다양한 비즈니스를 실행해 왔습니다.
현재 현대기아그룹과 자원순환 공동 사업자로서
기아 수출용 차량 판매, 수출용 부품 판매 권한 획득
우즈베키스탄 현지에 ㈜한스타 지사 설립 및
기아자동차 보증수리 자격 획득하고 현지에서서
특장차량 조립 판매 사업 진행 중입니다`
}

func staticCompanyHistory() []string {
	return []string{
		"1995년07월 : 무역협회(KITA) 가입",
		"1997년10월 : 외항해운대리점면허취득및대리점협회(KOSMA)가입",
		"2007년02월 : '㈜한스타'로상호변경",
		"2008년06월 : 경영혁신형중소기업선정",
		"2013년01월 : 마이크로네시아 폰페이항입출항및통관선박서비스시작",
		"2015년06월 : KP&I 보험가입해난사고선박처리업무시작",
		"2021년08월 : 현대기아자원순환사업시작",
		"2023년08월 : 우즈베키스탄지사설립",
		"2023년02월 : 우즈베키스탄기아조립공장판매차량보증수리계약",
		"2023년08월 : 우즈베키스탄조립차량의특장차사업계약( 예정 )",
	}
}

func staticContact() []string {
	return []string{
		"회사명           :   ㈜한스타   /    대표이사       :   정용봉",
		"설립일          :  1994년8월",
		"사업분야       :   해운/ 무역/ 원양어업서비스공급/부품재제조",
		"본사              :   인천광역시계양구경명대로1127 (계산동, 제5층제502호)",
		"대표번호       :   +82-32-555-2751   / FACIMILE    :   +82-32-555-2750",
		"E-MAIL       :     hanstarship@daum.net  /    hanstar@hanstar.co",
		"영업대표       :  윤정성(010-2923-8163)",
	}
}

func staticProgramFiles() []models.ProgramFile {
	return []models.ProgramFile{
		{
			ID:           "sample_file_1",
			Name:         "무역자료_2024.pdf",
			MimeType:     "application/pdf",
			Size:         "2.5 MB",
			ModifiedTime: "2024-01-15 14:30",
			DownloadURL:  "#",
		},
		{
			ID:           "sample_file_2",
			Name:         "운송자료_2024.xlsx",
			MimeType:     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Size:         "1.8 MB",
			ModifiedTime: "2024-01-10 09:15",
			DownloadURL:  "#",
		},
		{
			ID:           "sample_file_3",
			Name:         "법규자료_2024.docx",
			MimeType:     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Size:         "3.2 MB",
			ModifiedTime: "2024-01-05 16:45",
			DownloadURL:  "#",
		},
	}
}
