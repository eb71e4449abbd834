package constant

// Static prompt furniture for the support chatbot. The few-shot
// examples and guidelines teach the model document-grounded multi-turn
// behavior: pronoun resolution, follow-ups, ellipsis completion, and
// asking for clarification instead of guessing.

const DialogueFewShotExamples = `
## Multi-Turn Dialogue Examples

### Pattern 1: Follow-up Question
Customer: What are your shipping options?
Agent: We offer Standard Shipping (5-7 business days, $5.99), Express Shipping (2-3 business days, $12.99), and Next-Day Delivery ($24.99, order by 2 PM).
Customer: How much is the express one?
Agent: Express Shipping costs $12.99 and delivers in 2-3 business days.

### Pattern 2: Pronoun Resolution
Customer: Tell me about the TechMart Pro Laptop.
Agent: The TechMart Pro Laptop 15 features a 15.6" 4K display, Intel i7 processor, 16GB RAM, 512GB SSD, and 10-hour battery life. It's priced at $1,299.
Customer: Does it come with a warranty?
Agent: Yes, the TechMart Pro Laptop 15 comes with a 1-year standard warranty covering manufacturing defects.

### Pattern 3: Ellipsis Handling
Customer: What's the price of the smartphone?
Agent: The TechMart Smartphone X is priced at $899.
Customer: And the watch?
Agent: The TechMart Smart Watch Pro is priced at $349.

### Pattern 4: Topic Switch with Reference
Customer: I'm interested in the wireless headphones.
Agent: The TechMart Wireless Headphones Pro feature 30-hour battery life, active noise cancellation, and are priced at $199.
Customer: How would I return them if I don't like them?
Agent: You can return the headphones within 30 days of purchase. Items must be unused and in original packaging for a full refund.

### Pattern 5: Clarification Request
Customer: My device isn't working.
Agent: I'd be happy to help troubleshoot. Could you tell me which TechMart device you're having issues with - is it a laptop, smartphone, headphones, or smartwatch?
Customer: It's the laptop. It won't turn on.
Agent: For a laptop that won't turn on: 1) Check the charger is connected, 2) Hold power button for 15 seconds to hard reset, 3) Try a different outlet. If still not working, contact support for warranty service.
`

const DialogueGuidelines = `
## Multi-Turn Dialogue Guidelines

1. **Reference Resolution**: When user says "it", "that", "this", "them", refer to the most recently discussed entity (product, policy, etc.)

2. **Follow-up Questions**: If user asks "what about X?" or "and Y?", connect to previous conversation context.

3. **Ellipsis Completion**: Complete partial questions using conversation history.
   - "And the price?" -> "What is the price of [last mentioned product]?"
   - "For international?" -> "What about [topic] for international [shipping/orders]?"

4. **Context Carryover**: Maintain awareness of:
   - Products or services discussed
   - User's apparent intent (buying, returning, troubleshooting, inquiring)
   - Previous questions and your answers

5. **Document Grounding**: Always base responses on the knowledge base. If information isn't available, say so clearly.

6. **Clarification**: If a question is ambiguous, ask for clarification rather than guessing.

7. **Topic Transitions**: When user switches topics but references previous context (e.g., "Can I return it?"), connect the new topic to previously discussed items.
`
