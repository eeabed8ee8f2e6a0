package site

// Static marketing content served by the public site endpoints. This is
// curated editorial data, not admin-managed inventory, so it ships with
// the binary instead of living in postgres.

var projects = []*Project{
	{
		ProjectID:  "1",
		Title:      "Emerald Heights",
		Location:   "Bandra West, Mumbai",
		Category:   CategoryOngoing,
		CoverImage: "https://images.pexels.com/photos/323780/pexels-photo-323780.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Images: []string{
			"https://images.pexels.com/photos/1082326/pexels-photo-1082326.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Description:         "Luxury high-rise apartments with panoramic sea views and world-class amenities in the heart of Bandra West.",
		Features:            []string{"2, 3 & 4 BHK Luxury Apartments", "Sea-facing balconies", "Double-height lobby", "Smart home technology"},
		Amenities:           []string{"Infinity pool", "Fully-equipped gym", "Landscaped gardens", "Club house", "24/7 security"},
		FloorPlans:          []string{"2 BHK - 1250 sq.ft", "3 BHK - 1800 sq.ft", "4 BHK - 2400 sq.ft"},
		EstimatedCompletion: "December 2025",
		Price:               "₹ 3.5 Cr onwards",
	},
	{
		ProjectID:  "2",
		Title:      "Celestial Gardens",
		Location:   "Electronic City, Bangalore",
		Category:   CategoryOngoing,
		CoverImage: "https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Images: []string{
			"https://images.pexels.com/photos/1571468/pexels-photo-1571468.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/1643384/pexels-photo-1643384.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/1643385/pexels-photo-1643385.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Description:         "Modern apartments surrounded by lush greenery, designed for tech professionals with premium amenities and connectivity.",
		Features:            []string{"1, 2 & 3 BHK Smart Apartments", "Eco-friendly design", "High-speed fiber internet", "Co-working spaces"},
		Amenities:           []string{"Olympic-sized swimming pool", "Yoga deck", "Sports complex", "Children's play area", "EV charging stations"},
		FloorPlans:          []string{"1 BHK - 750 sq.ft", "2 BHK - 1100 sq.ft", "3 BHK - 1650 sq.ft"},
		EstimatedCompletion: "March 2026",
		Price:               "₹ 85 Lakhs onwards",
	},
	{
		ProjectID:  "3",
		Title:      "Royal Meadows",
		Location:   "Sector 150, Noida",
		Category:   CategoryUpcoming,
		CoverImage: "https://images.pexels.com/photos/1642125/pexels-photo-1642125.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Images: []string{
			"https://images.pexels.com/photos/1571463/pexels-photo-1571463.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/259588/pexels-photo-259588.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/1648776/pexels-photo-1648776.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Description:         "Premium township with vast open spaces, combining modern living with natural surroundings in the developing Noida Extension.",
		Features:            []string{"2 & 3 BHK Premium Apartments", "Villa plots", "Central park view", "Low-density community"},
		Amenities:           []string{"Clubhouse with indoor games", "Tennis courts", "Amphitheater", "Organic farm", "Walking trails"},
		FloorPlans:          []string{"2 BHK - 1200 sq.ft", "3 BHK - 1750 sq.ft", "Villa Plots - 2400 sq.ft onwards"},
		EstimatedCompletion: "June 2026",
		Price:               "₹ 75 Lakhs onwards",
	},
	{
		ProjectID:  "4",
		Title:      "Urban Square",
		Location:   "Whitefield, Bangalore",
		Category:   CategoryCompleted,
		CoverImage: "https://images.pexels.com/photos/323705/pexels-photo-323705.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Images: []string{
			"https://images.pexels.com/photos/1571458/pexels-photo-1571458.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/276554/pexels-photo-276554.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Description: "A completed luxury project with ready-to-move-in apartments, featuring contemporary architecture and premium finishes.",
		Features:    []string{"2 & 3 BHK Luxury Apartments", "Italian marble flooring", "Designer kitchens", "Home automation"},
		Amenities:   []string{"Infinity pool", "Fully-equipped gym", "Landscaped gardens", "Club house", "24/7 security"},
		Price:       "₹ 1.2 Cr onwards",
	},
	{
		ProjectID:  "5",
		Title:      "Harmony Heights",
		Location:   "Anna Nagar, Chennai",
		Category:   CategoryCompleted,
		CoverImage: "https://images.pexels.com/photos/1029599/pexels-photo-1029599.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Images: []string{
			"https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/1648771/pexels-photo-1648771.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/534151/pexels-photo-534151.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Description: "Contemporary living spaces in the heart of Chennai with excellent connectivity and elegant design elements.",
		Features:    []string{"1, 2 & 3 BHK Apartments", "Vastu compliant", "Premium finishes", "Spacious interiors"},
		Amenities:   []string{"Swimming pool", "Multi-purpose hall", "Landscaped gardens", "Children's play area", "Senior citizen corner"},
		Price:       "₹ 90 Lakhs onwards",
	},
	{
		ProjectID:  "6",
		Title:      "Platinum Towers",
		Location:   "Jubilee Hills, Hyderabad",
		Category:   CategoryUpcoming,
		CoverImage: "https://images.pexels.com/photos/681335/pexels-photo-681335.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Images: []string{
			"https://images.pexels.com/photos/1571459/pexels-photo-1571459.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/1643384/pexels-photo-1643384.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/275484/pexels-photo-275484.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Description:         "Ultra-luxury apartments in Hyderabad's most premium locality, featuring cutting-edge design and panoramic city views.",
		Features:            []string{"3 & 4 BHK Ultra Luxury Apartments", "Private terraces", "Double-height ceilings", "Designer fixtures"},
		Amenities:           []string{"Rooftop infinity pool", "Temperature-controlled indoor pool", "Home theatre", "Business center", "Helipad"},
		FloorPlans:          []string{"3 BHK - 2100 sq.ft", "4 BHK - 3200 sq.ft", "Penthouse - 5000 sq.ft"},
		EstimatedCompletion: "September 2026",
		Price:               "₹ 2.5 Cr onwards",
	},
}

var offeredServices = []*OfferedService{
	{
		ServiceID:   "1",
		Title:       "Project Development",
		Description: "From concept to completion, we handle every aspect of real estate development. Our experienced team manages land acquisition, design, construction, and delivery, ensuring quality at every step.",
		Icon:        "building",
	},
	{
		ServiceID:   "2",
		Title:       "Property Sales",
		Description: "Our dedicated sales team helps you find the perfect property that meets your requirements and budget. We provide comprehensive information, arrange site visits, and guide you through the entire purchasing process.",
		Icon:        "home",
	},
	{
		ServiceID:   "3",
		Title:       "Investment Advisory",
		Description: "Make informed real estate investment decisions with our expert guidance. We analyze market trends, identify high-potential opportunities, and create customized investment strategies to maximize your returns.",
		Icon:        "trending-up",
	},
	{
		ServiceID:   "4",
		Title:       "Legal Assistance",
		Description: "Navigate the complex legal aspects of real estate transactions with our specialized legal team. We ensure all documentation is in order, verify property titles, and facilitate smooth ownership transfers.",
		Icon:        "scale",
	},
	{
		ServiceID:   "5",
		Title:       "Home Loan Assistance",
		Description: "We partner with leading financial institutions to help you secure the best home loan options. Our team assists with application processing, documentation, and follows up until loan disbursement.",
		Icon:        "banknote",
	},
	{
		ServiceID:   "6",
		Title:       "After-Sales Service",
		Description: "Our commitment to you extends beyond the sale. We provide comprehensive after-sales support, including property management, maintenance services, and addressing any concerns you may have.",
		Icon:        "headset",
	},
}

var teamMembers = []*TeamMember{
	{
		MemberID: "1",
		Name:     "Amit Sharma",
		Position: "Founder & CEO",
		Image:    "https://images.pexels.com/photos/2381069/pexels-photo-2381069.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Bio:      "Amit has over 25 years of experience in real estate development. He founded ABS Real Estate with a vision to create sustainable living spaces that blend luxury with functionality. Under his leadership, the company has successfully delivered over 50 projects across major Indian cities.",
	},
	{
		MemberID: "2",
		Name:     "Priya Reddy",
		Position: "Chief Architect",
		Image:    "https://images.pexels.com/photos/5669602/pexels-photo-5669602.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Bio:      "With a master's degree from MIT and 15 years of experience, Priya leads our design team. Her innovative approach to architecture has won multiple awards and recognition in the industry. She specializes in creating spaces that marry aesthetics with sustainability.",
	},
	{
		MemberID: "3",
		Name:     "Rajesh Khanna",
		Position: "Head of Business Development",
		Image:    "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Bio:      "Rajesh brings 18 years of experience in sales and business development. His strategic approach has been instrumental in expanding ABS Real Estate's footprint across India. He specializes in identifying growth opportunities and building lasting client relationships.",
	},
	{
		MemberID: "4",
		Name:     "Neha Patel",
		Position: "Chief Financial Officer",
		Image:    "https://images.pexels.com/photos/789822/pexels-photo-789822.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Bio:      "Neha is a chartered accountant with extensive experience in financial planning for real estate ventures. She oversees all financial operations at ABS Real Estate, ensuring fiscal responsibility while maximizing returns for investors and stakeholders.",
	},
}

var testimonials = []*Testimonial{
	{
		TestimonialID: "1",
		Name:          "Vikram Mehta",
		Position:      "CEO",
		Company:       "TechSolutions India",
		Image:         "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Testimonial:   "Working with ABS Real Estate was a seamless experience. Their team understood our requirements perfectly and helped us find the ideal office space in Bangalore. The transparency and professionalism displayed throughout the process was commendable.",
	},
	{
		TestimonialID: "2",
		Name:          "Ananya Desai",
		Position:      "Doctor",
		Company:       "City Hospital",
		Image:         "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Testimonial:   "As first-time homebuyers, we were apprehensive about the entire process. ABS Real Estate guided us every step of the way, from selecting the right property to securing a loan. We are now proud owners of a beautiful apartment in Emerald Heights.",
	},
	{
		TestimonialID: "3",
		Name:          "Raj Malhotra",
		Position:      "Partner",
		Company:       "Global Investments",
		Image:         "https://images.pexels.com/photos/2379005/pexels-photo-2379005.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Testimonial:   "I've invested in multiple projects developed by ABS Real Estate over the past decade. Their commitment to quality, timely delivery, and appreciation potential has consistently provided excellent returns on my investments.",
	},
	{
		TestimonialID: "4",
		Name:          "Meera Kapoor",
		Position:      "Interior Designer",
		Company:       "Design Studio",
		Image:         "https://images.pexels.com/photos/774095/pexels-photo-774095.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Testimonial:   "The architectural excellence and attention to detail in ABS Real Estate properties make them stand out in the market. As an interior designer, I appreciate the thoughtful layouts and quality finishes that provide the perfect canvas for my designs.",
	},
}
