package constant

// ChecklistStep is one stage of the complaint-handling checklist overlay.
type ChecklistStep struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ComplaintChecklist is the fixed five-step checklist shown in the overlay.
var ComplaintChecklist = []ChecklistStep{
	{Title: "1단계: 고객 정보", Items: []string{"고객 이름", "생년월일 / 주민번호", "연락처 / 계약정보"}},
	{Title: "2단계: 응대 태도", Items: []string{"인사 및 경청", "공감 표현", "내용 재확인 / 상급자 보고"}},
	{Title: "3단계: 처리 절차 안내", Items: []string{"접수일 및 소요기간 안내", "담당자 이름 / 연락처 안내", "회신 방법 확인 (전화/문자 등)"}},
	{Title: "4단계: 결과 회신", Items: []string{"결과 내용 전달", "약관·규정 근거 설명", "고객 이해 확인 / 마무리 멘트"}},
	{Title: "5단계: 사후 관리", Items: []string{"민원 내역 기록", "사내 공유 및 재발방지", "관련 서류 스캔 및 보관"}},
}
