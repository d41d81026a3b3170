package extractor

import "regexp"

// Labels and shapes follow the layout reservation platforms use when an
// order summary is copied out of their admin pages.
var (
	bulletPrefix   = regexp.MustCompile(`^[-•·*▶▷■□◆◇●○>※]+\s*`)
	numberedPrefix = regexp.MustCompile(`^\d{1,2}[.)]\s+`)

	// The generic 이름 label requires a colon.
	nameLabel = regexp.MustCompile(`^(?:(?:예약자\s?명?|주문자\s?명?|수령인|수령자|받는\s?분|받으시는\s?분|고객\s?명|성함|성명)\s*(?:[:：]\s*|\s+)` +
		`|(?:고객\s?)?이름\s*[:：]\s*)(.+)$`)

	contactLabel = regexp.MustCompile(`^(?i:연락처|전화\s?번호|전화|휴대\s?폰(?:\s?번호)?|핸드폰(?:\s?번호)?|휴대\s?전화|안심\s?번호|연락\s?번호|phone|tel|h\.?p)\s*[:：]?\s*(.*)$`)
	phoneNumber  = regexp.MustCompile(`(?:^|[^\d])(01[016789]|02|0[3-6][1-5]|050\d|070|080)[-.\s)]?(\d{3,4})[-.\s]?(\d{4})(?:[^\d]|$)`)

	dateTime = regexp.MustCompile(`\d{4}\s*(?:[./-]|년)\s*\d{1,2}\s*(?:[./-]|월)\s*\d{1,2}(?:\s*[.일])?` +
		`(?:T\d{2}:\d{2}(?::\d{2}(?:\.\d+)?)?(?:Z|[+-]\d{2}:?\d{2})?)?` +
		`(?:\s*(?:\([^)]*\)|（[^）]*）))?` +
		`(?:\s*(?:오전|오후))?` +
		`(?:\s*\d{1,2}(?::\d{2}(?::\d{2})?|\s*시(?:\s*\d{1,2}\s*분|\s*반)?))?`)
	pickupDateLabel = regexp.MustCompile(`(?:픽업|수령|방문|예약|배송|배달|이용)\s*(?:일시|일자|날짜|시간|시각|일)`)
	orderDateLabel  = regexp.MustCompile(`(?:주문|결제|접수|등록)\s*(?:일시|일자|날짜|시간|시각|일)`)
	clockPart       = regexp.MustCompile(`오전|오후|(?:T|\s)\d{1,2}\s*(?::\d{2}|시)`)
	pickupTimeLine  = regexp.MustCompile(`^(?:픽업|수령|방문|예약|배송|배달|이용)\s*(?:시간|시각)\s*[:：]?\s*` +
		`((?:오전|오후)\s*\d{1,2}(?::\d{2})?(?:\s*시(?:\s*\d{1,2}\s*분|\s*반)?)?` +
		`|\d{1,2}(?::\d{2}|\s*시(?:\s*\d{1,2}\s*분|\s*반)?))$`)

	amount = regexp.MustCompile(`₩\s*(\d[\d,]*)` +
		`|(\d+(?:\.\d+)?)\s*만\s*(?:(\d+)\s*천\s*)?원` +
		`|(\d+)\s*천\s*원` +
		`|(\d[\d,]*)\s*원`)
	grandTotalLabel = regexp.MustCompile(`^(?:총|합계|총\s?합계|총액|결제\s?금액|총\s?결제\s?금액|총\s?금액|주문\s?금액|최종\s?금액|최종\s?결제\s?금액|금액|가격)$`)
	feeLabel        = regexp.MustCompile(`^(?:상품\s?금액|배송비|배달비|포장비|할인|할인\s?금액)$`)
	labelledBare    = regexp.MustCompile(`^(?:총|합계|총액|결제\s?금액|총\s?결제\s?금액|총\s?금액|주문\s?금액|최종\s?금액)\s*[:：]?\s*(\d[\d,]*)$`)

	addressLabel = regexp.MustCompile(`^(?:배송지|배송\s?주소|배달\s?주소|받는\s?주소|수령\s?주소|주소)\s*(?:[:：]\s*|\s+)(.+)$`)
	addressShape = regexp.MustCompile(`(?:[가-힣]+(?:특별시|광역시|특별자치시|특별자치도|시|도)|서울|부산|대구|인천|광주|대전|울산|세종|경기|강원|충북|충남|전북|전남|경북|경남|제주)` +
		`(?:\s+[가-힣]+(?:시|군|구))+\s+[가-힣0-9]+(?:로|길|동|읍|면|리)`)

	methodLabel      = regexp.MustCompile(`^(?:수령\s?방법|수령\s?방식|수령|받는\s?방법|배송\s?방법|배송\s?방식|주문\s?유형|주문\s?방식|픽업\s?방법|이용\s?방법)\s*[:：]\s*(.+)$`)
	deliveryKeywords = regexp.MustCompile(`배달|배송|택배|퀵`)
	pickupKeywords   = regexp.MustCompile(`매장|픽업|방문|포장|직접\s?수령|테이크\s?아웃`)

	requestLabel = regexp.MustCompile(`^(?:요청\s?사항|요청|배송\s?요청\s?사항|배송\s?메모|배달\s?메모|주문\s?메모|고객\s?메모|메모|비고|전달\s?사항|기타)\s*[:：]\s*(.*)$`)

	itemLabel = regexp.MustCompile(`^(?:주문\s?상품|주문\s?메뉴|상품\s?정보|상품\s?명?|메뉴|품목)\s*[:：]\s*(.+)$`)
	itemShape = regexp.MustCompile(`^(.+?)\s*(?:[xX×*]\s*(\d+)(?:\s*(?:개|세트|박스|인분|팩|병|줄|판|통|봉지|봉|마리|접시|잔|컵|조각))?` +
		`|(\d+)\s*(?:개|세트|박스|인분|팩|병|줄|판|통|봉지|봉|마리|접시|잔|컵|조각|EA|ea|pcs|set))` +
		`(?:\s*[(/,:-]?\s*(?:₩\s*)?\d[\d,]*\s*원?\)?)?$`)

	sectionHeader = regexp.MustCompile(`^(?:\[.*\]|【.*】|<.*>|=+|_{3,}|~{3,}|` +
		`(?:주문|예약|상품|배송|결제|고객|주문자|예약자|수령인|받는\s?분)\s?(?:정보|내역|상품|목록))\s*:?$`)
)
