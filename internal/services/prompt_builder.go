package services

import (
	"fmt"
	"strings"

	"vivuplan/internal/models/itinerary_models"
)

const itinerarySchemaExample = `
{
  "title": "Tiêu đề chung của chuyến đi (ví dụ: Chuyến phiêu lưu 7 ngày tại Việt Nam)",
  "overview": "Một đoạn mô tả ngắn gọn tổng quan về chuyến đi (2-3 câu, tiếng Việt).",
  "generalNotes": [
    { "type": "important", "content": "Nội dung lưu ý chung quan trọng (tiếng Việt)", "icon": "💡" }
  ],
  "days": [
    {
      "dayNumber": 1,
      "date": "Ngày 1",
      "title": "Tiêu đề cho ngày, ví dụ: Khám phá Hà Nội Cổ Kính 🏙️ (tiếng Việt)",
      "summary": "Mô tả ngắn gọn các hoạt động chính trong ngày (tiếng Việt).",
      "sections": [
        {
          "title": "Buổi sáng ☀️ (tiếng Việt)",
          "items": [
            { "type": "activity", "description": "Hoạt động buổi sáng 1 (tiếng Việt)", "icon": "🚶‍♀️" },
            { "type": "transport", "description": "Di chuyển đến X bằng Y (tiếng Việt)", "icon": "🚕", "estimatedCost": 50000, "currency": "VND" },
            { "type": "food", "description": "Ăn sáng: Phở bò tại quán Z (tiếng Việt)", "icon": "🍜", "estimatedCost": 60000, "currency": "VND" }
          ]
        }
      ],
      "dailyNotes": [
        { "content": "Lưu ý riêng cho ngày này (tiếng Việt)", "icon": "📝" }
      ],
      "trendySuggestion": {
        "title": "Điểm check-in 'hot' 🔥 (tiếng Việt)",
        "description": "Ghé thăm [Tên địa điểm trendy] (tiếng Việt)",
        "icon": "📸"
      },
      "accommodationSuggestion": {
        "type": "Gợi ý chung về khu vực/loại hình lưu trú (tiếng Việt)",
        "details": "Ví dụ: Khu vực Phố Cổ có nhiều homestay và khách sạn tầm trung. (tiếng Việt)",
        "minPrice": 400000,
        "maxPrice": 800000,
        "priceCurrency": "VND"
      }
    }
  ],
  "mapData": {
    "points": [
      { "name": "Hồ Hoàn Kiếm", "latitude": 21.0285, "longitude": 105.8542, "description": "Mô tả ngắn cho marker (tiếng Việt)", "icon": "📍" }
    ],
    "routes": [
      { "name": "Từ Văn Miếu đến Lăng Bác", "startPointName": "Văn Miếu", "endPointName": "Lăng Bác", "transportMode": "Xe máy", "travelTime": "Khoảng 15 phút" }
    ],
    "initialCenter": { "latitude": 21.0278, "longitude": 105.8342 },
    "initialZoom": 12
  },
  "finalThoughts": {
    "travelTips": [
      { "title": "Đổi tiền & Sim 4G (tiếng Việt)", "content": "Nên đổi một ít tiền mặt và mua SIM 4G tại sân bay. (tiếng Việt)", "icon": "📱" }
    ],
    "bookingAdvice": "Bạn nên tự tìm hiểu và đặt vé máy bay, khách sạn trước chuyến đi. (tiếng Việt)",
    "culturalInsights": [
      { "title": "Văn hóa giao tiếp (tiếng Việt)", "content": "Một nụ cười và lời chào sẽ giúp bạn dễ dàng kết nối. (tiếng Việt)", "icon": "🤝" }
    ]
  },
  "feasibilityWarning": "Cảnh báo nếu các điểm đến quá xa nhau trong thời gian chuyến đi (tiếng Việt).",
  "costDisclaimer": "Chi phí chỉ mang tính tham khảo và có thể thay đổi. (tiếng Việt)"
}
`

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// BuildItineraryPrompt renders the Vietnamese planning prompt for req.
// Absent optional fields are replaced by the wording the model expects.
func BuildItineraryPrompt(req itinerary_models.PlanRequest) string {
	travelers := "1 người (mặc định)"
	if req.NumberOfTravelers != nil && *req.NumberOfTravelers > 0 {
		travelers = fmt.Sprintf("%d", *req.NumberOfTravelers)
	}

	var prompt strings.Builder
	prompt.WriteString("Bạn là một chuyên gia hoạch định du lịch AI, chuyên sâu về các điểm đến tại Việt Nam và am hiểu văn hóa, lễ hội địa phương.\n")
	prompt.WriteString("Hãy tạo một kế hoạch du lịch chi tiết, hấp dẫn và khả thi cho chuyến đi đến Việt Nam dựa trên các thông tin sau:\n\n")

	prompt.WriteString(fmt.Sprintf("1. **Điểm khởi hành (nếu có):** %s\n",
		orDefault(req.DeparturePoint, "Không được cung cấp (có thể bắt đầu từ điểm đến đầu tiên)")))
	prompt.WriteString(fmt.Sprintf("2. **Các điểm đến chính:** %s\n", req.Destinations))
	prompt.WriteString(fmt.Sprintf("3. **Thời gian chuyến đi:** %d ngày\n", req.Duration))
	prompt.WriteString(fmt.Sprintf("4. **Số lượng người đi (nếu có):** %s. Nếu có nhiều người, hãy cân nhắc các hoạt động/gợi ý phù hợp cho nhóm.\n", travelers))
	prompt.WriteString(fmt.Sprintf("5. **Sở thích:** %s. Đây là một chuỗi các sở thích cách nhau bởi dấu phẩy.\n",
		orDefault(req.Interests, "Tổng hợp (bao gồm văn hóa, lịch sử, thiên nhiên, ẩm thực, thư giãn/nghỉ dưỡng)")))
	prompt.WriteString("   Hãy **lồng ghép sâu sắc** các sở thích này vào từng hoạt động và gợi ý cụ thể hàng ngày.\n")
	prompt.WriteString(fmt.Sprintf("6. **Mục đích chuyến đi (nếu có):** %s. Hãy điều chỉnh không khí và loại hình hoạt động cho phù hợp.\n",
		orDefault(req.TripPurpose, "Không được cung cấp (xem xét chung)")))
	prompt.WriteString(fmt.Sprintf("7. **Ưu tiên về khách sạn (nếu có):** %s.\n", orDefault(req.HotelPreference, "Bất kỳ")))
	prompt.WriteString("   Dựa vào ưu tiên này, hãy gợi ý loại hình lưu trú hoặc khu vực trong mục 'accommodationSuggestion' của mỗi ngày, kèm khoảng giá tham khảo 'minPrice'/'maxPrice'. **Không đề xuất tên khách sạn cụ thể.**\n")
	prompt.WriteString("8. **Gợi ý \"Hot\" và \"Trendy\":** Trong mục 'trendySuggestion' của mỗi ngày (nếu có), lồng ghép các địa điểm, quán cà phê, hoạt động đang được yêu thích trên mạng xã hội.\n")
	prompt.WriteString("9. **Yếu tố địa phương hóa:** Lồng ghép lễ hội truyền thống, điểm đến ít người biết và ẩm thực vùng miền trong các 'items' loại 'food'.\n")
	prompt.WriteString("10. **Chi phí ước tính:** Với các hoạt động có chi phí, điền 'estimatedCost' (số, không có dấu phân cách) và 'currency' là \"VND\".\n")

	prompt.WriteString("\nYÊU CẦU CHI TIẾT CHO LỊCH TRÌNH (ĐỊNH DẠNG JSON):\n")
	prompt.WriteString("Hãy trả về kết quả dưới dạng một đối tượng JSON hợp lệ. TUYỆT ĐỐI KHÔNG BAO GỒM BẤT KỲ VĂN BẢN NÀO BÊN NGOÀI CẶP DẤU NGOẶC NHỌN {} CỦA JSON.\n")
	prompt.WriteString("Cấu trúc JSON mong muốn như sau (đảm bảo tất cả các chuỗi văn bản bằng tiếng Việt có dấu):\n")
	prompt.WriteString(itinerarySchemaExample)

	prompt.WriteString("\nQUAN TRỌNG:\n")
	prompt.WriteString(fmt.Sprintf("- Tạo đúng %d phần tử trong 'days'.\n", req.Duration))
	prompt.WriteString("- 'type' của mỗi item chỉ được là một trong: activity, food, transport, note, interaction.\n")
	prompt.WriteString("- `startPointName` và `endPointName` của 'routes' PHẢI KHỚP với `name` của các điểm trong 'points'. Nếu không có thông tin bản đồ phù hợp, để `points: [], routes: []`.\n")
	prompt.WriteString("- Sử dụng emoji phù hợp cho trường 'icon'. Nội dung các trường văn bản không chứa cú pháp Markdown.\n")
	prompt.WriteString("- Nếu các điểm đến quá xa, đề cập việc di chuyển bằng máy bay trong 'items' loại 'transport' hoặc trong 'feasibilityWarning'.\n")
	prompt.WriteString("**Bắt đầu trực tiếp với đối tượng JSON, không cần lời chào hỏi hay giới thiệu ban đầu.**")

	return prompt.String()
}
