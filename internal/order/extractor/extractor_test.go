package extractor_test

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"order-intake/internal/order"
	"order-intake/internal/order/extractor"
	"order-intake/pkg/datenorm"
)

var now = time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)

func kst(y int, mo time.Month, d, h, mi int) time.Time {
	return time.Date(y, mo, d, h, mi, 0, 0, time.FixedZone("KST", 9*60*60))
}

func newExtractor() order.Extractor {
	return extractor.New(datenorm.Default())
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func itemNames(items []order.ItemDraft) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestExtractPlatformSample(t *testing.T) {
	text := "수령인: 홍길동\n연락처: 010-1234-5678\n2025.12.31.(수) 오후 2:00\n수령: 매장\n도시락 2개\n총 15000원"

	d, err := newExtractor().Extract(text, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.CustomerName != "홍길동" {
		t.Errorf("CustomerName = %q", d.CustomerName)
	}
	if d.CustomerContact == nil || *d.CustomerContact != "010-1234-5678" {
		t.Errorf("CustomerContact = %v", d.CustomerContact)
	}
	if !d.PickupAt.Equal(kst(2025, 12, 31, 14, 0)) {
		t.Errorf("PickupAt = %v", d.PickupAt)
	}
	if d.PickupDefaulted {
		t.Error("PickupDefaulted should be false")
	}
	if d.PickupDate() != "2025-12-31" || d.PickupTime() != "14:00" {
		t.Errorf("pickup date/time = %s %s", d.PickupDate(), d.PickupTime())
	}
	if d.PickupType != order.PickupTypePickup {
		t.Errorf("PickupType = %s", d.PickupType)
	}
	if len(d.Items) != 1 || d.Items[0].Text != "도시락 2개" || d.Items[0].Name != "도시락" {
		t.Fatalf("Items = %+v", d.Items)
	}
	if d.Items[0].Quantity == nil || *d.Items[0].Quantity != 2 {
		t.Errorf("Quantity = %v", d.Items[0].Quantity)
	}
	if d.TotalPrice == nil || !d.TotalPrice.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("TotalPrice = %v", d.TotalPrice)
	}
	if d.Request != nil {
		t.Errorf("Request = %q, want nil", *d.Request)
	}
	if d.Address != nil {
		t.Errorf("Address = %q, want nil", *d.Address)
	}
	if d.SourceText != text {
		t.Error("SourceText should be the input verbatim")
	}
}

func TestExtractErrors(t *testing.T) {
	tcs := map[string]struct {
		text string
		want error
	}{
		"empty":        {text: "", want: order.ErrMalformedInput},
		"whitespace":   {text: "  \n\t \n", want: order.ErrMalformedInput},
		"invalid utf8": {text: "예약자: \xff\xfe", want: order.ErrMalformedInput},
		"no name":      {text: "연락처: 010-1234-5678\n도시락 2개", want: order.ErrNoCustomerName},
		"empty name":   {text: "예약자: (010-1234-5678)\n도시락 2개", want: order.ErrNoCustomerName},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := newExtractor().Extract(tc.text, now)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestExtractDelivery(t *testing.T) {
	text := "주문자: 이영희 님\n" +
		"배송지: 서울시 강남구 테헤란로 123\n" +
		"연락처 010 9876 5432\n" +
		"결제일시: 2025-01-02 09:00\n" +
		"배송일: 2025-01-05 오전 11:30\n" +
		"떡 1박스\n" +
		"배송비 3,000원\n" +
		"결제금액: 32,000원\n" +
		"요청사항: 문 앞에 두세요"

	d, err := newExtractor().Extract(text, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.CustomerName != "이영희" {
		t.Errorf("CustomerName = %q", d.CustomerName)
	}
	if d.CustomerContact == nil || *d.CustomerContact != "010-9876-5432" {
		t.Errorf("CustomerContact = %v", d.CustomerContact)
	}
	if d.Address == nil || *d.Address != "서울시 강남구 테헤란로 123" {
		t.Errorf("Address = %v", d.Address)
	}
	if d.PickupType != order.PickupTypeDelivery {
		t.Errorf("PickupType = %s", d.PickupType)
	}
	// The labelled delivery date outranks the earlier payment timestamp.
	if !d.PickupAt.Equal(kst(2025, 1, 5, 11, 30)) {
		t.Errorf("PickupAt = %v", d.PickupAt)
	}
	if d.PickupSource == nil || *d.PickupSource != "2025-01-05 오전 11:30" {
		t.Errorf("PickupSource = %v", d.PickupSource)
	}
	if d.TotalPrice == nil || !d.TotalPrice.Equal(decimal.NewFromInt(32000)) {
		t.Errorf("TotalPrice = %v", d.TotalPrice)
	}
	if d.Request == nil || *d.Request != "문 앞에 두세요" {
		t.Errorf("Request = %v", d.Request)
	}
	if got := itemNames(d.Items); !reflect.DeepEqual(got, []string{"떡"}) {
		t.Errorf("Items = %v", got)
	}
}

func TestExtractPickupType(t *testing.T) {
	tcs := map[string]struct {
		text string
		want order.PickupType
	}{
		"no cue defaults to pickup": {
			text: "성함: 박민수\n김밥 3줄",
			want: order.PickupTypePickup,
		},
		"pickup keyword": {
			text: "성함: 박민수\n매장에서 포장해 갈게요",
			want: order.PickupTypePickup,
		},
		"delivery keyword": {
			text: "성함: 박민수\n수령 방법: 배달",
			want: order.PickupTypeDelivery,
		},
		"address without keyword": {
			text: "성함: 박민수\n부산 해운대구 우동 1234",
			want: order.PickupTypeDelivery,
		},
		"mixed cues": {
			text: "성함: 박민수\n매장 픽업 후 일부는 퀵으로 보내주세요",
			want: order.PickupTypeUnknown,
		},
		"delivery date label": {
			text: "수령인: 홍길동\n배달 일시: 2025.12.31 오후 2:00\n도시락 2개",
			want: order.PickupTypeDelivery,
		},
		"pickup date label": {
			text: "수령인: 홍길동\n방문일: 2025.12.31 오후 2:00",
			want: order.PickupTypePickup,
		},
		"keyword after the date is ignored": {
			text: "수령인: 홍길동\n2025.12.31 (배송 불가 지역) 오후 2:00",
			want: order.PickupTypePickup,
		},
		"delivery time label": {
			text: "수령인: 홍길동\n2025.12.31\n배송시간: 오후 2시",
			want: order.PickupTypeDelivery,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d, err := newExtractor().Extract(tc.text, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.PickupType != tc.want {
				t.Errorf("PickupType = %s, want %s", d.PickupType, tc.want)
			}
		})
	}
}

func TestExtractDefaultsPickupToNow(t *testing.T) {
	d, err := newExtractor().Extract("예약자: 김철수\n김밥 3줄", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !d.PickupDefaulted {
		t.Error("PickupDefaulted should be true")
	}
	if !d.PickupAt.Equal(now) {
		t.Errorf("PickupAt = %v, want %v", d.PickupAt, now)
	}
	if _, off := d.PickupAt.Zone(); off != 9*60*60 {
		t.Errorf("PickupAt offset = %d, want +09:00", off)
	}
	if d.PickupSource != nil {
		t.Errorf("PickupSource = %q, want nil", *d.PickupSource)
	}
	if d.TotalPrice != nil {
		t.Errorf("TotalPrice = %v, want nil", d.TotalPrice)
	}
}

func TestExtractLastTotalWins(t *testing.T) {
	text := "이름: 최지우\n아메리카노 2잔\n9,000원\n8,000원"

	d, err := newExtractor().Extract(text, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.TotalPrice == nil || !d.TotalPrice.Equal(decimal.NewFromInt(8000)) {
		t.Errorf("TotalPrice = %v, want 8000", d.TotalPrice)
	}
	if len(d.Items) != 1 || d.Items[0].Name != "아메리카노" {
		t.Errorf("Items = %+v", d.Items)
	}
	if d.Request != nil {
		t.Errorf("Request = %q, want nil", *d.Request)
	}
}

func TestExtractTotalSelection(t *testing.T) {
	tcs := map[string]struct {
		text    string
		want    *int64
		request *string
	}{
		"grand total before fee": {
			text: "성함: 윤서준\n도시락 2개\n총 결제금액 15,000원\n배송비 3,000원",
			want: int64Ptr(15000),
		},
		"grand total before discount": {
			text:    "성함: 윤서준\n아메리카노 2잔 9,000원\n합계 9,000원\n할인 후 8,000원",
			want:    int64Ptr(9000),
			request: strPtr("할인 후 8,000원"),
		},
		"amount inside request": {
			text:    "성함: 윤서준\n도시락 2개\n총 15000원\n요청사항: 1만원권으로 거슬러주세요",
			want:    int64Ptr(15000),
			request: strPtr("1만원권으로 거슬러주세요"),
		},
		"request amount without total": {
			text:    "성함: 윤서준\n도시락 2개\n요청사항: 5천원 거슬러주세요",
			request: strPtr("5천원 거슬러주세요"),
		},
		"item prices only": {
			text: "성함: 윤서준\n도시락 2개 8000원\n김밥 1줄 3000원",
		},
		"discount beside the total": {
			text:    "성함: 윤서준\n도시락 2개\n합계 9,000원 (할인 2,000원)",
			want:    int64Ptr(9000),
			request: strPtr("합계 9,000원 (할인 2,000원)"),
		},
		"fee only": {
			text: "성함: 윤서준\n도시락 2개\n배송비 3,000원",
		},
		"bare amount fallback": {
			text: "성함: 윤서준\n도시락 2개\n18,000원",
			want: int64Ptr(18000),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d, err := newExtractor().Extract(tc.text, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			switch {
			case tc.want == nil && d.TotalPrice != nil:
				t.Errorf("TotalPrice = %v, want nil", d.TotalPrice)
			case tc.want != nil && (d.TotalPrice == nil || !d.TotalPrice.Equal(decimal.NewFromInt(*tc.want))):
				t.Errorf("TotalPrice = %v, want %d", d.TotalPrice, *tc.want)
			}
			switch {
			case tc.request == nil && d.Request != nil:
				t.Errorf("Request = %q, want nil", *d.Request)
			case tc.request != nil && (d.Request == nil || *d.Request != *tc.request):
				t.Errorf("Request = %v, want %q", d.Request, *tc.request)
			}
		})
	}
}

func TestExtractAmountShapes(t *testing.T) {
	tcs := map[string]struct {
		line string
		want int64
	}{
		"plain":         {line: "총 15000원", want: 15000},
		"grouped":       {line: "합계: 15,000원", want: 15000},
		"won sign":      {line: "결제금액 ₩23,500", want: 23500},
		"man":           {line: "총 3만원", want: 30000},
		"decimal man":   {line: "총 1.5만원", want: 15000},
		"man cheon":     {line: "총 2만 5천원", want: 25000},
		"labelled bare": {line: "총 금액: 42000", want: 42000},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d, err := newExtractor().Extract("예약자: 김철수\n"+tc.line, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.TotalPrice == nil || !d.TotalPrice.Equal(decimal.NewFromInt(tc.want)) {
				t.Errorf("TotalPrice = %v, want %d", d.TotalPrice, tc.want)
			}
		})
	}
}

func TestExtractItems(t *testing.T) {
	text := "고객명: 정수아\n주문 상품: 김밥 2줄, 라면 1개\n- 떡볶이 x 3\n상품: 음료"

	d, err := newExtractor().Extract(text, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		text string
		name string
		qty  int
	}{
		{"김밥 2줄", "김밥", 2},
		{"라면 1개", "라면", 1},
		{"떡볶이 x 3", "떡볶이", 3},
		{"음료", "음료", 0},
	}
	if len(d.Items) != len(want) {
		t.Fatalf("Items = %+v", d.Items)
	}
	for i, w := range want {
		got := d.Items[i]
		if got.Text != w.text || got.Name != w.name {
			t.Errorf("item %d = %+v, want %s/%s", i, got, w.text, w.name)
		}
		switch {
		case w.qty == 0 && got.Quantity != nil:
			t.Errorf("item %d quantity = %d, want nil", i, *got.Quantity)
		case w.qty != 0 && (got.Quantity == nil || *got.Quantity != w.qty):
			t.Errorf("item %d quantity = %v, want %d", i, got.Quantity, w.qty)
		}
	}
	if d.Request != nil {
		t.Errorf("Request = %q, want nil", *d.Request)
	}
}

func TestExtractHeadersAndRemainder(t *testing.T) {
	text := "[예약 정보]\n예약자명: 한가람\n예약일시: 2025년 3월 7일 오후 6시 30분\n----\n생일 케이크 문구 부탁드려요"

	d, err := newExtractor().Extract(text, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.CustomerName != "한가람" {
		t.Errorf("CustomerName = %q", d.CustomerName)
	}
	if !d.PickupAt.Equal(kst(2025, 3, 7, 18, 30)) {
		t.Errorf("PickupAt = %v", d.PickupAt)
	}
	if d.Request == nil || *d.Request != "생일 케이크 문구 부탁드려요" {
		t.Errorf("Request = %v", d.Request)
	}
	if d.CustomerContact != nil {
		t.Errorf("CustomerContact = %q, want nil", *d.CustomerContact)
	}
}

func TestExtractContactFallback(t *testing.T) {
	d, err := newExtractor().Extract("예약자: 오세훈 (010.2222.3333)", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.CustomerName != "오세훈" {
		t.Errorf("CustomerName = %q", d.CustomerName)
	}
	if d.CustomerContact == nil || *d.CustomerContact != "010-2222-3333" {
		t.Errorf("CustomerContact = %v", d.CustomerContact)
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "주문자: 이영희\n배송지: 서울시 강남구 테헤란로 123\n떡 1박스, 식혜 2병\n메모: 경비실\n총 40,000원"
	ex := newExtractor()

	first, err := ex.Extract(text, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for range 5 {
		again, err := ex.Extract(text, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("extraction differs between runs:\n%+v\n%+v", first, again)
		}
	}
}

func TestExtractConcurrent(t *testing.T) {
	text := "예약자: 박지성\n연락처: 010-5555-6666\n예약일시: 2025-07-01 오전 11:30\n김밥 3줄\n총 12,000원"
	ex := newExtractor()

	want, err := ex.Extract(text, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ex.Extract(text, now)
			if err != nil || !reflect.DeepEqual(got, want) {
				errs <- fmt.Sprintf("got %+v, err %v", got, err)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}

func TestExtractSplitDateAndTime(t *testing.T) {
	text := "예약자: 김하늘\n2025.12.31\n픽업시간: 오후 2:00\n케이크 1개"

	d, err := newExtractor().Extract(text, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !d.PickupAt.Equal(kst(2025, 12, 31, 14, 0)) {
		t.Errorf("PickupAt = %v", d.PickupAt)
	}
	if d.PickupDefaulted {
		t.Error("PickupDefaulted should be false")
	}
	if d.PickupSource == nil || *d.PickupSource != "2025.12.31 오후 2:00" {
		t.Errorf("PickupSource = %v", d.PickupSource)
	}
	if d.Request != nil {
		t.Errorf("Request = %q, want nil", *d.Request)
	}
}

func TestExtractTimeWithoutDate(t *testing.T) {
	d, err := newExtractor().Extract("예약자: 김하늘\n픽업시간: 오후 2:00", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !d.PickupDefaulted {
		t.Error("PickupDefaulted should be true")
	}
	if !d.PickupAt.Equal(now) {
		t.Errorf("PickupAt = %v, want %v", d.PickupAt, now)
	}
	if d.PickupSource == nil || *d.PickupSource != "오후 2:00" {
		t.Errorf("PickupSource = %v", d.PickupSource)
	}
}

func TestExtractNameLabels(t *testing.T) {
	tcs := map[string]struct {
		text string
		want string
	}{
		"generic label needs a colon": {
			text: "이름 없음 2025.12.31\n예약자: 홍길동",
			want: "홍길동",
		},
		"generic label with colon": {
			text: "이름: 홍길동",
			want: "홍길동",
		},
		"trailing date is trimmed": {
			text: "예약자 홍길동 2025.12.31 오후 2시",
			want: "홍길동",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d, err := newExtractor().Extract(tc.text, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.CustomerName != tc.want {
				t.Errorf("CustomerName = %q, want %q", d.CustomerName, tc.want)
			}
		})
	}
}

func TestExtractBareGenericLabelIsNotAName(t *testing.T) {
	_, err := newExtractor().Extract("이름 없음 2025.12.31\n도시락 2개", now)
	if !errors.Is(err, order.ErrNoCustomerName) {
		t.Fatalf("err = %v, want %v", err, order.ErrNoCustomerName)
	}
}
