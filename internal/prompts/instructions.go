package prompts

const instructions = `You are an expert landing page copywriter and marketing specialist. Generate compelling, conversion-optimized content for a landing page.`

const productTemplate = `**Product Information:**
- Product Name: %s
- Industry: %s
- Target Audience: %s
- Tone: %s
- Unique Value Proposition: %s
- Key Features: %s
- Brand Color: %s`

const requirementsTemplate = `**Requirements:**
1. Create a powerful hero section with an attention-grabbing headline and compelling subheadline
2. Write an engaging "About" section that explains the product's value
3. Generate 4 unique feature descriptions with creative titles
4. Create 3 authentic-sounding customer testimonials with realistic names, roles, and companies
5. Use persuasive, benefit-focused language
6. Match the %s tone throughout
7. Tailor content specifically for %s
8. Emphasize the unique value: %s`

const closing = `Generate ONLY the JSON object. Do not include any markdown formatting, code blocks, or explanatory text.`
